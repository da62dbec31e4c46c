package domain

type RoomID string

// Room owns the membership of one class session.
// It is not safe for concurrent use: the registry serializes access.
type Room struct {
	ID           RoomID
	participants map[ConnectionID]Participant
	order        []ConnectionID
}

func NewRoom(id RoomID) *Room {
	return &Room{
		ID:           id,
		participants: make(map[ConnectionID]Participant),
	}
}

// Put inserts or overwrites the participant of a connection.
// An overwrite keeps the original position in the listing order.
func (r *Room) Put(p Participant) {
	if _, ok := r.participants[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.participants[p.ID] = p
}

func (r *Room) Get(id ConnectionID) (Participant, bool) {
	p, ok := r.participants[id]
	return p, ok
}

// Update applies mutate to the participant when present.
func (r *Room) Update(id ConnectionID, mutate func(*Participant)) (Participant, bool) {
	p, ok := r.participants[id]
	if !ok {
		return Participant{}, false
	}
	mutate(&p)
	p.ID = id
	r.participants[id] = p
	return p, true
}

func (r *Room) Remove(id ConnectionID) (Participant, bool) {
	p, ok := r.participants[id]
	if !ok {
		return Participant{}, false
	}
	delete(r.participants, id)
	for i, c := range r.order {
		if c == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return p, true
}

// Participants returns a copy of the members in join order.
func (r *Room) Participants() []Participant {
	res := make([]Participant, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.participants[id])
	}
	return res
}

func (r *Room) Len() int {
	return len(r.participants)
}

func (r *Room) IsEmpty() bool {
	return len(r.participants) == 0
}
