package ws

import (
	"classroom-relay/contract"
	"classroom-relay/domain"
	"classroom-relay/domain/event"
	"classroom-relay/errors"
	"encoding/json"
	"fmt"
	"log/slog"
)

// HandlerFunc handles the raw data of one inbound event.
type HandlerFunc func(connID domain.ConnectionID, data json.RawMessage) error

// Dispatcher maps inbound event names to typed handlers.
// Unknown events and payloads that fail decoding or validation are dropped:
// nothing is sent back to the peer.
type Dispatcher struct {
	log      *slog.Logger
	handlers map[event.Name]HandlerFunc
	recorder contract.DeliveryRecorder
}

func NewDispatcher(log *slog.Logger, sessions contract.ISessionService,
	relay contract.IRelayService, recorder contract.DeliveryRecorder) *Dispatcher {
	d := &Dispatcher{log: log, handlers: make(map[event.Name]HandlerFunc), recorder: recorder}

	join := handle(sessions.Join)
	leave := handle(sessions.Leave)
	count := handle(relay.RelayCount)

	d.Register(event.JoinRoom, join)
	d.Register(event.JoinClass, join)
	d.Register(event.LeaveRoom, leave)
	d.Register(event.LeaveClass, leave)
	d.Register(event.ReportCount, count)
	d.Register(event.StudentSendCount, count)
	d.Register(event.ToggleMic, handle(sessions.ToggleMic))
	d.Register(event.ToggleVideo, handle(sessions.ToggleVideo))
	d.Register(event.SendMessage, handle(func(_ domain.ConnectionID, cmd domain.SendMessageCommand) {
		relay.SendMessage(cmd)
	}))
	return d
}

// Register binds an event name, replacing any previous handler.
func (d *Dispatcher) Register(name event.Name, h HandlerFunc) {
	d.handlers[name] = h
}

// handle decodes and validates a command before calling fn.
func handle[C domain.Command](fn func(domain.ConnectionID, C)) HandlerFunc {
	return func(connID domain.ConnectionID, data json.RawMessage) error {
		var cmd C
		if err := json.Unmarshal(data, &cmd); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
		}
		if err := domain.Validate(cmd); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
		}
		fn(connID, cmd)
		return nil
	}
}

// Dispatch decodes one frame and runs its handler to completion.
// A panicking handler is contained here so the connection stays up.
func (d *Dispatcher) Dispatch(connID domain.ConnectionID, frame []byte) {
	d.incr(contract.DeliveryRecorder.IncrEventsReceived)

	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		d.drop(connID, env.Event, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err))
		return
	}
	h, ok := d.handlers[env.Event]
	if !ok {
		d.drop(connID, env.Event, errors.ErrUnknownEvent)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Handler panicked", "connection_id", connID, "event", env.Event, "panic", r)
			d.incr(contract.DeliveryRecorder.IncrEventsDropped)
		}
	}()
	if err := h(connID, env.Data); err != nil {
		d.drop(connID, env.Event, err)
	}
}

func (d *Dispatcher) drop(connID domain.ConnectionID, name event.Name, err error) {
	d.log.Debug("Inbound event dropped", "connection_id", connID, "event", name, "error", err)
	d.incr(contract.DeliveryRecorder.IncrEventsDropped)
}

func (d *Dispatcher) incr(fn func(contract.DeliveryRecorder)) {
	if d.recorder != nil {
		fn(d.recorder)
	}
}
