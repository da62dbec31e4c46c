package runtime

import (
	"classroom-relay/contract"
	"classroom-relay/domain"
	"classroom-relay/domain/event"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

var _ contract.IRouter = (*Router)(nil)

type Set map[domain.ConnectionID]struct{}

// Router delivers events to live connections.
//
// It keeps two maps: the connection directory (connection -> Sender) filled
// by the gateway, and the broadcast groups (room -> connections) filled by
// the session handler. Delivery is best-effort with no retries: a Sender
// that refuses a payload, or a connection that is gone, is counted and
// skipped.
//
// Router is safe for concurrent use by multiple goroutines.
type Router struct {
	mu       sync.RWMutex
	log      *slog.Logger
	sessions map[domain.ConnectionID]contract.Sender
	groups   map[domain.RoomID]Set
	recorder contract.DeliveryRecorder
}

// NewRouter returns a router with no connections.
// recorder may be nil when drops need not be counted.
func NewRouter(log *slog.Logger, recorder contract.DeliveryRecorder) *Router {
	return &Router{
		log:      log,
		sessions: make(map[domain.ConnectionID]contract.Sender),
		groups:   make(map[domain.RoomID]Set),
		recorder: recorder,
	}
}

// Attach registers the delivery endpoint of a newly accepted connection.
func (r *Router) Attach(connID domain.ConnectionID, sender contract.Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[connID] = sender
}

// Detach forgets a connection and removes it from every broadcast group.
func (r *Router) Detach(connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, connID)
	for roomID, members := range r.groups {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.groups, roomID)
		}
	}
}

// Subscribe adds a connection to the broadcast group of a room,
// creating the group on first use.
func (r *Router) Subscribe(roomID domain.RoomID, connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[roomID]; !ok {
		r.groups[roomID] = make(Set)
	}
	r.groups[roomID][connID] = struct{}{}
}

// Unsubscribe removes a connection from a room group and drops empty groups.
func (r *Router) Unsubscribe(roomID domain.RoomID, connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.groups[roomID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.groups, roomID)
		}
	}
}

// EmitToRoom sends to every subscriber of the room except exclude.
func (r *Router) EmitToRoom(roomID domain.RoomID, name event.Name, payload any, exclude domain.ConnectionID) {
	for _, target := range r.targets(roomID, exclude) {
		r.deliver(target.Key, target.Value, name, payload)
	}
}

// EmitToAllInRoom sends to every subscriber of the room, sender included.
func (r *Router) EmitToAllInRoom(roomID domain.RoomID, name event.Name, payload any) {
	r.EmitToRoom(roomID, name, payload, "")
}

// EmitToConnection is a unicast. An unknown connection counts as a dropped delivery.
func (r *Router) EmitToConnection(connID domain.ConnectionID, name event.Name, payload any) {
	r.mu.RLock()
	sender, ok := r.sessions[connID]
	r.mu.RUnlock()
	if !ok {
		r.dropped(connID, name)
		return
	}
	r.deliver(connID, sender, name, payload)
}

// targets snapshots the recipients so no lock is held while sending.
func (r *Router) targets(roomID domain.RoomID, exclude domain.ConnectionID) []lo.Entry[domain.ConnectionID, contract.Sender] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.groups[roomID]
	if !ok {
		return nil
	}
	var res []lo.Entry[domain.ConnectionID, contract.Sender]
	for connID := range members {
		if connID == exclude {
			continue
		}
		if sender, exists := r.sessions[connID]; exists {
			res = append(res, lo.Entry[domain.ConnectionID, contract.Sender]{Key: connID, Value: sender})
		}
	}
	return res
}

func (r *Router) deliver(connID domain.ConnectionID, sender contract.Sender, name event.Name, payload any) {
	if !sender.Send(name, payload) {
		r.dropped(connID, name)
	}
}

func (r *Router) dropped(connID domain.ConnectionID, name event.Name) {
	r.log.Debug("Delivery dropped", "connection_id", connID, "event", name)
	if r.recorder != nil {
		r.recorder.IncrDeliveriesDropped()
	}
}

// Subscribers lists the connections of a room group.
func (r *Router) Subscribers(roomID domain.RoomID) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.groups[roomID])
}

// ConnectionCount is the number of attached connections.
func (r *Router) ConnectionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
