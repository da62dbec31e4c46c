package ws

import (
	"classroom-relay/contract"
	"classroom-relay/domain"
	"classroom-relay/domain/event"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var _ contract.Sender = (*Connection)(nil)

// Connection wraps one websocket peer.
//
// The application runs ReadPump and WritePump in one goroutine each, so there
// is at most one reader and one writer on the socket. Outbound events go
// through a bounded queue which keeps them in order for this peer.
type Connection struct {
	ID   domain.ConnectionID
	conn *websocket.Conn
	log  *slog.Logger
	opts Options

	mu     sync.Mutex
	closed bool
	send   chan outbound
}

func NewConnection(id domain.ConnectionID, conn *websocket.Conn, log *slog.Logger, opts Options) *Connection {
	return &Connection{
		ID:   id,
		conn: conn,
		log:  log,
		opts: opts,
		send: make(chan outbound, opts.BufferSize),
	}
}

// Send queues an event without blocking.
// It returns false when the queue is full or the connection is closed.
func (c *Connection) Send(name event.Name, payload any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- outbound{Event: name, Data: payload}:
		return true
	default:
		c.log.Warn("Send queue full, dropping event", "connection_id", c.ID, "event", name)
		return false
	}
}

// Close stops accepting events; the write pump drains what is queued and
// then sends a close frame.
func (c *Connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// ReadPump reads frames until the peer goes away and hands each one to
// handle, in arrival order.
func (c *Connection) ReadPump(handle func(frame []byte)) {
	c.conn.SetReadLimit(c.opts.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("Unexpected close", "connection_id", c.ID, "error", err)
			}
			return
		}
		handle(data)
	}
}

// WritePump writes queued events and keeps the peer alive with pings.
func (c *Connection) WritePump() {
	ticker := time.NewTicker(c.opts.pingPeriod())
	defer func() {
		ticker.Stop()
		c.Close()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.log.Debug("Write failed", "connection_id", c.ID, "event", msg.Event, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
