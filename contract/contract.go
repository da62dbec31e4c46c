//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"classroom-relay/domain"
	"classroom-relay/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Sender is the delivery capability of one live connection.
// Send must not block; false means the payload was dropped.
type Sender interface {
	Send(name event.Name, payload any) bool
}

// Removal is one membership removed by a disconnect scan.
type Removal struct {
	RoomID      domain.RoomID
	Participant domain.Participant
}

type IRegistry interface {
	AddParticipant(roomID domain.RoomID, connID domain.ConnectionID, p domain.Participant)
	GetParticipant(roomID domain.RoomID, connID domain.ConnectionID) (domain.Participant, bool)
	UpdateParticipant(roomID domain.RoomID, connID domain.ConnectionID, mutate func(*domain.Participant)) (domain.Participant, bool)
	RemoveParticipant(roomID domain.RoomID, connID domain.ConnectionID) (domain.Participant, bool)
	RemoveFromAllRooms(connID domain.ConnectionID) []Removal
	ListParticipants(roomID domain.RoomID) []domain.Participant
	RoomCount() int
}

type IRouter interface {
	Attach(connID domain.ConnectionID, sender Sender)
	Detach(connID domain.ConnectionID)
	Subscribe(roomID domain.RoomID, connID domain.ConnectionID)
	Unsubscribe(roomID domain.RoomID, connID domain.ConnectionID)
	EmitToRoom(roomID domain.RoomID, name event.Name, payload any, exclude domain.ConnectionID)
	EmitToAllInRoom(roomID domain.RoomID, name event.Name, payload any)
	EmitToConnection(connID domain.ConnectionID, name event.Name, payload any)
}

type ISessionService interface {
	Join(connID domain.ConnectionID, cmd domain.JoinRoomCommand)
	ToggleMic(connID domain.ConnectionID, cmd domain.ToggleMicCommand)
	ToggleVideo(connID domain.ConnectionID, cmd domain.ToggleVideoCommand)
	Leave(connID domain.ConnectionID, cmd domain.LeaveRoomCommand)
	Disconnect(connID domain.ConnectionID)
}

type IRelayService interface {
	SendMessage(cmd domain.SendMessageCommand)
	RelayCount(connID domain.ConnectionID, cmd domain.ReportCountCommand)
}

// DeliveryRecorder counts best-effort outcomes for the status surface.
type DeliveryRecorder interface {
	IncrDeliveriesDropped()
	IncrEventsDropped()
	IncrEventsReceived()
}
