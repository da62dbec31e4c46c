package services

import (
	"classroom-relay/contract"
	"classroom-relay/domain"
	"classroom-relay/domain/event"
	"log/slog"
	"time"
)

var _ contract.ISessionService = (*SessionService)(nil)

// SessionService drives the membership of a connection in rooms:
// absent -> joined -> (presence-updated)* -> left|disconnected -> absent.
// Stale operations on a connection that is not a member are no-ops.
type SessionService struct {
	log      *slog.Logger
	registry contract.IRegistry
	router   contract.IRouter
	now      func() time.Time
}

// NewSessionService wires the handler. now defaults to time.Now and is
// injected by tests to pin joinedAt.
func NewSessionService(log *slog.Logger, registry contract.IRegistry, router contract.IRouter, now func() time.Time) *SessionService {
	if now == nil {
		now = time.Now
	}
	return &SessionService{log: log, registry: registry, router: router, now: now}
}

// Join records the participant, hydrates the joiner with the full member
// list and announces the newcomer to the others. A second join of the same
// connection overwrites the first.
func (s *SessionService) Join(connID domain.ConnectionID, cmd domain.JoinRoomCommand) {
	roomID := cmd.RoomID()
	participant := domain.NewParticipant(connID, cmd.UserName, cmd.UserRole, cmd.PeerID, s.now())

	s.registry.AddParticipant(roomID, connID, participant)
	s.router.Subscribe(roomID, connID)

	s.log.Info("Participant joined",
		"room_id", roomID,
		"connection_id", connID,
		"name", participant.Name,
		"role", participant.Role,
		"peer_id", participant.PeerID)
	if !participant.Role.IsKnown() {
		s.log.Debug("Unknown participant role", "role", participant.Role)
	}

	s.router.EmitToConnection(connID, event.RoomParticipants, s.registry.ListParticipants(roomID))
	s.router.EmitToRoom(roomID, event.UserJoined, participant, connID)
}

// ToggleMic stores the mic flag and sends the delta {id, isMuted} to the
// other members. Ignored when the connection is not in the room.
func (s *SessionService) ToggleMic(connID domain.ConnectionID, cmd domain.ToggleMicCommand) {
	roomID := cmd.RoomID()
	if cmd.IsMuted == nil {
		return
	}
	isMuted := *cmd.IsMuted
	if _, ok := s.registry.UpdateParticipant(roomID, connID, func(p *domain.Participant) {
		p.IsMuted = isMuted
	}); !ok {
		s.log.Debug("Mic toggle ignored, not a member", "room_id", roomID, "connection_id", connID)
		return
	}
	s.router.EmitToRoom(roomID, event.ParticipantUpdated, event.MicUpdated{ID: connID, IsMuted: isMuted}, connID)
}

// ToggleVideo is ToggleMic for the camera flag.
func (s *SessionService) ToggleVideo(connID domain.ConnectionID, cmd domain.ToggleVideoCommand) {
	roomID := cmd.RoomID()
	if cmd.IsVideoOn == nil {
		return
	}
	isVideoOn := *cmd.IsVideoOn
	if _, ok := s.registry.UpdateParticipant(roomID, connID, func(p *domain.Participant) {
		p.IsVideoOn = isVideoOn
	}); !ok {
		s.log.Debug("Video toggle ignored, not a member", "room_id", roomID, "connection_id", connID)
		return
	}
	s.router.EmitToRoom(roomID, event.ParticipantUpdated, event.VideoUpdated{ID: connID, IsVideoOn: isVideoOn}, connID)
}

// Leave removes the connection from one room; it stays live for the others.
func (s *SessionService) Leave(connID domain.ConnectionID, cmd domain.LeaveRoomCommand) {
	roomID := cmd.RoomID()
	participant, ok := s.registry.RemoveParticipant(roomID, connID)
	if !ok {
		s.log.Debug("Leave ignored, not a member", "room_id", roomID, "connection_id", connID)
		return
	}
	s.router.Unsubscribe(roomID, connID)
	s.router.EmitToRoom(roomID, event.UserLeft, event.NewUserLeft(participant), connID)
	s.log.Info("Participant left", "room_id", roomID, "connection_id", connID, "name", participant.Name)
}

// Disconnect cleans up every membership of a connection that went away.
// It always runs to completion and is idempotent.
func (s *SessionService) Disconnect(connID domain.ConnectionID) {
	removals := s.registry.RemoveFromAllRooms(connID)
	s.router.Detach(connID)

	for _, r := range removals {
		s.router.EmitToRoom(r.RoomID, event.UserLeft, event.NewUserLeft(r.Participant), connID)
		s.log.Info("Participant disconnected",
			"room_id", r.RoomID,
			"connection_id", connID,
			"name", r.Participant.Name)
	}
}
