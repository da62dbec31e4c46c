package domain

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Command is an inbound intent addressed to a room.
type Command interface {
	RoomID() RoomID
}

// RoomRef carries the target room. Older clients send classId instead of roomId.
type RoomRef struct {
	Room  string `json:"roomId,omitempty" validate:"required_without=Class"`
	Class string `json:"classId,omitempty" validate:"required_without=Room"`
}

func (r RoomRef) RoomID() RoomID {
	if r.Room != "" {
		return RoomID(r.Room)
	}
	return RoomID(r.Class)
}

type JoinRoomCommand struct {
	RoomRef
	UserName string `json:"userName"`
	UserRole Role   `json:"userRole"`
	PeerID   string `json:"peerId"`
}

type SendMessageCommand struct {
	RoomRef
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

type ToggleMicCommand struct {
	RoomRef
	IsMuted *bool `json:"isMuted" validate:"required"`
}

type ToggleVideoCommand struct {
	RoomRef
	IsVideoOn *bool `json:"isVideoOn" validate:"required"`
}

type LeaveRoomCommand struct {
	RoomRef
}

// ReportCountCommand is the periodic head count a student client samples.
// Pointers distinguish a missing field from a zero value.
type ReportCountCommand struct {
	RoomRef
	Count  *float64 `json:"count" validate:"required"`
	PeerID *string  `json:"peerId" validate:"required"`
}

// Validate checks the struct tags of a command.
func Validate(cmd Command) error {
	return validate.Struct(cmd)
}
