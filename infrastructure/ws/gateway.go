package ws

import (
	"classroom-relay/contract"
	"classroom-relay/domain"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ConnectionCounter tracks live connections for the status surface.
type ConnectionCounter interface {
	IncrConnections()
	DecrConnections()
}

// Gateway accepts websocket peers, gives each a connection id and feeds
// their frames to the dispatcher. When a peer goes away, for any reason,
// the session cleanup runs to completion before the handler returns.
type Gateway struct {
	log        *slog.Logger
	upgrader   websocket.Upgrader
	router     contract.IRouter
	sessions   contract.ISessionService
	dispatcher *Dispatcher
	counter    ConnectionCounter
	opts       Options
}

func NewGateway(log *slog.Logger, router contract.IRouter, sessions contract.ISessionService,
	dispatcher *Dispatcher, counter ConnectionCounter, opts Options) *Gateway {
	return &Gateway{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     opts.checkOrigin,
		},
		router:     router,
		sessions:   sessions,
		dispatcher: dispatcher,
		counter:    counter,
		opts:       opts,
	}
}

// ServeWS blocks for the lifetime of the websocket.
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn("Failed to upgrade connection", "remote", r.RemoteAddr, "error", err)
		return
	}

	connID := domain.ConnectionID(uuid.NewString())
	c := NewConnection(connID, conn, g.log, g.opts)
	g.router.Attach(connID, c)
	if g.counter != nil {
		g.counter.IncrConnections()
	}
	g.log.Info("Client connected", "connection_id", connID, "remote", r.RemoteAddr)

	go c.WritePump()
	c.ReadPump(func(frame []byte) {
		g.dispatcher.Dispatch(connID, frame)
	})

	g.sessions.Disconnect(connID)
	c.Close()
	if g.counter != nil {
		g.counter.DecrConnections()
	}
	g.log.Info("Client disconnected", "connection_id", connID)
}
