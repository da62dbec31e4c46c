package services

import (
	"classroom-relay/contract"
	"classroom-relay/domain"
	"classroom-relay/domain/event"
	"log/slog"
	"time"
)

var _ contract.IRelayService = (*RelayService)(nil)

// RelayService passes chat lines and student counts through to a room.
// Nothing is retained: late joiners get no backlog.
type RelayService struct {
	log      *slog.Logger
	router   contract.IRouter
	recorder contract.DeliveryRecorder
	now      func() time.Time
}

// NewRelayService wires the relay. recorder may be nil; now defaults to time.Now.
func NewRelayService(log *slog.Logger, router contract.IRouter, recorder contract.DeliveryRecorder, now func() time.Time) *RelayService {
	if now == nil {
		now = time.Now
	}
	return &RelayService{log: log, router: router, recorder: recorder, now: now}
}

// SendMessage stamps the message and echoes it to the whole room, sender included.
func (s *RelayService) SendMessage(cmd domain.SendMessageCommand) {
	msg := domain.NewChatMessage(cmd.Sender, cmd.Message, s.now())
	s.router.EmitToAllInRoom(cmd.RoomID(), event.NewMessage, msg)
}

// RelayCount forwards a student count to the rest of the room.
// Malformed samples are dropped without telling the sender.
func (s *RelayService) RelayCount(connID domain.ConnectionID, cmd domain.ReportCountCommand) {
	if err := domain.Validate(cmd); err != nil {
		s.log.Debug("Student count dropped", "connection_id", connID, "error", err)
		if s.recorder != nil {
			s.recorder.IncrEventsDropped()
		}
		return
	}
	s.router.EmitToRoom(cmd.RoomID(), event.StudentCountUpdate, event.StudentCount{
		PeerID: *cmd.PeerID,
		Count:  *cmd.Count,
	}, connID)
}
