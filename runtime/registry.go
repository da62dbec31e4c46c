package runtime

import (
	"classroom-relay/contract"
	"classroom-relay/domain"
	"sync"

	"github.com/samber/lo"
)

var _ contract.IRegistry = (*Registry)(nil)

// roomEntry guards one room. dead is set, under mu, once the room has been
// emptied and is about to be unlinked from the registry.
type roomEntry struct {
	mu   sync.Mutex
	room *domain.Room
	dead bool
}

// Registry is the authoritative map of rooms and their participants.
//
// Locking: mu only covers the rooms map. Each room has its own mutex.
// The order is always room then registry; mu is never held while a room
// lock is being acquired.
type Registry struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*roomEntry
}

// NewRegistry returns an empty registry. Rooms appear on first join.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[domain.RoomID]*roomEntry)}
}

// ensureRoom returns the live entry of a room, creating it when absent.
func (r *Registry) ensureRoom(roomID domain.RoomID) *roomEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.rooms[roomID]
	if !ok {
		entry = &roomEntry{room: domain.NewRoom(roomID)}
		r.rooms[roomID] = entry
	}
	return entry
}

func (r *Registry) lookup(roomID domain.RoomID) (*roomEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.rooms[roomID]
	return entry, ok
}

// AddParticipant inserts or overwrites the participant of a connection,
// creating the room on first join.
func (r *Registry) AddParticipant(roomID domain.RoomID, connID domain.ConnectionID, p domain.Participant) {
	p.ID = connID
	for {
		entry := r.ensureRoom(roomID)
		entry.mu.Lock()
		if entry.dead {
			// Lost a race with the last leaver, the entry is being unlinked.
			entry.mu.Unlock()
			continue
		}
		entry.room.Put(p)
		entry.mu.Unlock()
		return
	}
}

// GetParticipant looks up one membership. Absent is a normal outcome,
// e.g. a toggle arriving after the connection left.
func (r *Registry) GetParticipant(roomID domain.RoomID, connID domain.ConnectionID) (domain.Participant, bool) {
	entry, ok := r.lookup(roomID)
	if !ok {
		return domain.Participant{}, false
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.dead {
		return domain.Participant{}, false
	}
	return entry.room.Get(connID)
}

// UpdateParticipant applies mutate only when the connection is a member.
func (r *Registry) UpdateParticipant(roomID domain.RoomID, connID domain.ConnectionID, mutate func(*domain.Participant)) (domain.Participant, bool) {
	entry, ok := r.lookup(roomID)
	if !ok {
		return domain.Participant{}, false
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.dead {
		return domain.Participant{}, false
	}
	return entry.room.Update(connID, mutate)
}

// RemoveParticipant removes the membership and deletes the room when it
// becomes empty.
func (r *Registry) RemoveParticipant(roomID domain.RoomID, connID domain.ConnectionID) (domain.Participant, bool) {
	entry, ok := r.lookup(roomID)
	if !ok {
		return domain.Participant{}, false
	}
	return r.removeFrom(roomID, entry, connID)
}

func (r *Registry) removeFrom(roomID domain.RoomID, entry *roomEntry, connID domain.ConnectionID) (domain.Participant, bool) {
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.dead {
		return domain.Participant{}, false
	}
	p, ok := entry.room.Remove(connID)
	if !ok {
		return domain.Participant{}, false
	}
	if entry.room.IsEmpty() {
		entry.dead = true
		r.mu.Lock()
		if r.rooms[roomID] == entry {
			delete(r.rooms, roomID)
		}
		r.mu.Unlock()
	}
	return p, true
}

// RemoveFromAllRooms drops a connection from every room it joined.
// Rooms are locked one at a time so unrelated rooms are never blocked by the scan.
func (r *Registry) RemoveFromAllRooms(connID domain.ConnectionID) []contract.Removal {
	r.mu.RLock()
	entries := lo.Entries(r.rooms)
	r.mu.RUnlock()

	var removals []contract.Removal
	for _, e := range entries {
		if p, ok := r.removeFrom(e.Key, e.Value, connID); ok {
			removals = append(removals, contract.Removal{RoomID: e.Key, Participant: p})
		}
	}
	return removals
}

// ListParticipants returns a snapshot of the room members in join order.
func (r *Registry) ListParticipants(roomID domain.RoomID) []domain.Participant {
	entry, ok := r.lookup(roomID)
	if !ok {
		return []domain.Participant{}
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.dead {
		return []domain.Participant{}
	}
	return entry.room.Participants()
}

// ParticipantCount returns 0 for unknown rooms.
func (r *Registry) ParticipantCount(roomID domain.RoomID) int {
	entry, ok := r.lookup(roomID)
	if !ok {
		return 0
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.dead {
		return 0
	}
	return entry.room.Len()
}

// HasRoom reports whether the room has at least one participant.
func (r *Registry) HasRoom(roomID domain.RoomID) bool {
	_, ok := r.lookup(roomID)
	return ok
}

// RoomCount is the number of rooms with at least one participant.
func (r *Registry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// RoomIDs lists the active rooms, in no particular order.
func (r *Registry) RoomIDs() []domain.RoomID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.rooms)
}
