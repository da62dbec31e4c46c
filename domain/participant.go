// Package domain contains core concepts of the classroom relay.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

type ConnectionID string

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// IsKnown reports whether the role is one the classroom clients send.
// Unknown roles are still accepted and passed through unchanged.
func (r Role) IsKnown() bool {
	return r == RoleTeacher || r == RoleStudent
}

// Participant is the presence record of one connection inside one room.
type Participant struct {
	ID        ConnectionID `json:"id"`
	Name      string       `json:"name"`
	Role      Role         `json:"role"`
	PeerID    string       `json:"peerId"` // opaque, owned by the media layer
	IsMuted   bool         `json:"isMuted"`
	IsVideoOn bool         `json:"isVideoOn"`
	JoinedAt  time.Time    `json:"joinedAt"`
}

// NewParticipant builds the record of a fresh join: unmuted, camera on.
func NewParticipant(id ConnectionID, name string, role Role, peerID string, joinedAt time.Time) Participant {
	return Participant{
		ID:        id,
		Name:      name,
		Role:      role,
		PeerID:    peerID,
		IsMuted:   false,
		IsVideoOn: true,
		JoinedAt:  joinedAt.UTC(),
	}
}
