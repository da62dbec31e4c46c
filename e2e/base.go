package e2e

import (
	"classroom-relay/domain/event"
	"classroom-relay/infrastructure/ws"
	"classroom-relay/internal"
	"classroom-relay/observability"
	"classroom-relay/runtime"
	"classroom-relay/services"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

const readTimeout = 2 * time.Second

type BaseRelaySuite struct {
	suite.Suite
	Config   Config
	Registry *runtime.Registry
	server   *httptest.Server
	url      string
}

// SetupSuite loads the environment configuration and starts an in-process
// relay unless E2E_RELAY_URL points at a running one.
func (s *BaseRelaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.RelayURL != "" {
		s.url = s.Config.RelayURL
		return
	}

	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	monitoring := observability.NewMonitoringManager(log)
	s.Registry = runtime.NewRegistry()
	router := runtime.NewRouter(log, monitoring)
	sessions := services.NewSessionService(log, s.Registry, router, nil)
	relay := services.NewRelayService(log, router, monitoring, nil)
	dispatcher := ws.NewDispatcher(log, sessions, relay, monitoring)
	gateway := ws.NewGateway(log, router, sessions, dispatcher, monitoring, ws.DefaultOptions())

	s.server = httptest.NewServer(internal.NewMux(log, gateway.ServeWS, s.Registry, monitoring))
	s.url = "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws"
}

func (s *BaseRelaySuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

// Step prints a colorized header for a scenario step.
func (s *BaseRelaySuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// InProcess skips assertions that need direct registry access.
func (s *BaseRelaySuite) InProcess() bool {
	return s.Registry != nil
}

// Client is one classroom participant's socket.
type Client struct {
	suite *BaseRelaySuite
	name  string
	conn  *websocket.Conn
}

func (s *BaseRelaySuite) Connect(name string) *Client {
	conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
	s.Require().NoError(err, "dial relay as %s", name)
	c := &Client{suite: s, name: name, conn: conn}
	s.T().Cleanup(func() { _ = conn.Close() })
	return c
}

func (c *Client) Emit(name event.Name, data any) {
	raw, err := json.Marshal(data)
	c.suite.Require().NoError(err)
	c.suite.Require().NoError(c.conn.WriteJSON(ws.Envelope{Event: name, Data: raw}), "%s emits %s", c.name, name)
}

// Expect reads the next frame, asserts its event name and decodes its data.
func (c *Client) Expect(name event.Name, into any) {
	c.suite.Require().NoError(c.conn.SetReadDeadline(time.Now().Add(readTimeout)))
	var msg ws.Envelope
	c.suite.Require().NoError(c.conn.ReadJSON(&msg), "%s waits for %s", c.name, name)
	if c.suite.Config.DebugJSON {
		c.suite.T().Logf("%s <- %s %s", c.name, msg.Event, string(msg.Data))
	}
	c.suite.Require().Equal(name, msg.Event, "%s received an unexpected event", c.name)
	if into != nil {
		c.suite.Require().NoError(json.Unmarshal(msg.Data, into))
	}
}

// ExpectSilence asserts nothing arrives within the window.
// The socket is unusable afterwards, so it must be the client's last read.
func (c *Client) ExpectSilence(window time.Duration) {
	c.suite.Require().NoError(c.conn.SetReadDeadline(time.Now().Add(window)))
	var msg ws.Envelope
	err := c.conn.ReadJSON(&msg)
	c.suite.Require().Error(err, "%s unexpectedly received %s", c.name, msg.Event)
}

// Close drops the socket without a leave-room, like a closed browser tab.
func (c *Client) Close() {
	_ = c.conn.Close()
}
