// Package event lists the events exchanged with classroom clients.
package event

import "classroom-relay/domain"

type Name string

// Inbound events, client to server.
const (
	JoinRoom    Name = "join-room"
	SendMessage Name = "send-message"
	ToggleMic   Name = "toggle-mic"
	ToggleVideo Name = "toggle-video"
	LeaveRoom   Name = "leave-room"
	ReportCount Name = "report-count"

	// Names used by the first generation of classroom clients.
	JoinClass        Name = "join-class"
	LeaveClass       Name = "leave-class"
	StudentSendCount Name = "student-send-count"
)

// Outbound events, server to client.
const (
	RoomParticipants   Name = "room-participants"
	UserJoined         Name = "user-joined"
	NewMessage         Name = "new-message"
	ParticipantUpdated Name = "participant-updated"
	UserLeft           Name = "user-left"
	StudentCountUpdate Name = "student-count-update"
)

// MicUpdated is the delta sent when a participant toggles the microphone.
type MicUpdated struct {
	ID      domain.ConnectionID `json:"id"`
	IsMuted bool                `json:"isMuted"`
}

// VideoUpdated is the delta sent when a participant toggles the camera.
type VideoUpdated struct {
	ID        domain.ConnectionID `json:"id"`
	IsVideoOn bool                `json:"isVideoOn"`
}

type UserLeftPayload struct {
	ID     domain.ConnectionID `json:"id"`
	Name   string              `json:"name"`
	PeerID string              `json:"peerId"`
}

type StudentCount struct {
	PeerID string  `json:"peerId"`
	Count  float64 `json:"count"`
}

func NewUserLeft(p domain.Participant) UserLeftPayload {
	return UserLeftPayload{ID: p.ID, Name: p.Name, PeerID: p.PeerID}
}
