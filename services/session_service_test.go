package services

import (
	"classroom-relay/domain"
	"classroom-relay/domain/event"
	"classroom-relay/mocks"
	"classroom-relay/runtime"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 9, 2, 8, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type sessionFixture struct {
	registry *runtime.Registry
	router   *runtime.Router
	service  *SessionService
}

func newSessionFixture() sessionFixture {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry()
	router := runtime.NewRouter(log, nil)
	return sessionFixture{
		registry: registry,
		router:   router,
		service:  NewSessionService(log, registry, router, clock),
	}
}

func joinCmd(room, name string, role domain.Role, peerID string) domain.JoinRoomCommand {
	return domain.JoinRoomCommand{
		RoomRef:  domain.RoomRef{Room: room},
		UserName: name,
		UserRole: role,
		PeerID:   peerID,
	}
}

func TestSessionService_Classroom_Scenario(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newSessionFixture()
	a := mocks.NewMockSender(ctrl)
	b := mocks.NewMockSender(ctrl)
	f.router.Attach("A", a)
	f.router.Attach("B", b)

	alice := domain.NewParticipant("A", "Alice", domain.RoleTeacher, "p1", fixedNow)
	bob := domain.NewParticipant("B", "Bob", domain.RoleStudent, "p2", fixedNow)

	// Given Alice joins math101, she receives herself
	a.EXPECT().Send(event.RoomParticipants, []domain.Participant{alice}).Return(true).Times(1)
	f.service.Join("A", joinCmd("math101", "Alice", domain.RoleTeacher, "p1"))

	// When Bob joins, he receives both and Alice hears about him
	b.EXPECT().Send(event.RoomParticipants, []domain.Participant{alice, bob}).Return(true).Times(1)
	a.EXPECT().Send(event.UserJoined, bob).Return(true).Times(1)
	f.service.Join("B", joinCmd("math101", "Bob", domain.RoleStudent, "p2"))

	// When Bob mutes, Alice gets the delta only
	a.EXPECT().Send(event.ParticipantUpdated, event.MicUpdated{ID: "B", IsMuted: true}).Return(true).Times(1)
	f.service.ToggleMic("B", domain.ToggleMicCommand{RoomRef: domain.RoomRef{Room: "math101"}, IsMuted: lo.ToPtr(true)})

	stored, ok := f.registry.GetParticipant("math101", "B")
	req.True(ok)
	req.True(stored.IsMuted)
	req.True(stored.IsVideoOn)

	// When Bob disconnects, Alice is told and the room survives
	a.EXPECT().Send(event.UserLeft, event.UserLeftPayload{ID: "B", Name: "Bob", PeerID: "p2"}).Return(true).Times(1)
	f.service.Disconnect("B")
	req.Equal([]domain.Participant{alice}, f.registry.ListParticipants("math101"))
	req.True(f.registry.HasRoom("math101"))

	// When Alice leaves, the room is gone
	f.service.Leave("A", domain.LeaveRoomCommand{RoomRef: domain.RoomRef{Room: "math101"}})
	req.False(f.registry.HasRoom("math101"))
	req.Zero(f.registry.RoomCount())
}

func TestSessionService_Join_Twice_KeepsOneRecord(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newSessionFixture()
	a := mocks.NewMockSender(ctrl)
	f.router.Attach("A", a)
	a.EXPECT().Send(event.RoomParticipants, gomock.Any()).Return(true).Times(2)

	f.service.Join("A", joinCmd("math101", "Alice", domain.RoleTeacher, "p1"))
	f.service.ToggleVideo("A", domain.ToggleVideoCommand{RoomRef: domain.RoomRef{Room: "math101"}, IsVideoOn: lo.ToPtr(false)})
	f.service.Join("A", joinCmd("math101", "Alice", domain.RoleTeacher, "p7"))

	participants := f.registry.ListParticipants("math101")
	req.Len(participants, 1)
	req.Equal("p7", participants[0].PeerID)
	req.True(participants[0].IsVideoOn)
	req.Equal(fixedNow, participants[0].JoinedAt)
}

func TestSessionService_Toggle_NotMember_IsNoop(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newSessionFixture()
	a := mocks.NewMockSender(ctrl)
	stranger := mocks.NewMockSender(ctrl)
	f.router.Attach("A", a)
	f.router.Attach("S", stranger)

	a.EXPECT().Send(event.RoomParticipants, gomock.Any()).Return(true).Times(1)
	f.service.Join("A", joinCmd("math101", "Alice", domain.RoleTeacher, "p1"))
	before := f.registry.ListParticipants("math101")

	// When a connection that never joined toggles, nobody is notified
	f.service.ToggleMic("S", domain.ToggleMicCommand{RoomRef: domain.RoomRef{Room: "math101"}, IsMuted: lo.ToPtr(true)})
	f.service.ToggleVideo("S", domain.ToggleVideoCommand{RoomRef: domain.RoomRef{Room: "math101"}, IsVideoOn: lo.ToPtr(false)})
	f.service.ToggleMic("S", domain.ToggleMicCommand{RoomRef: domain.RoomRef{Room: "math101"}})

	// Then the registry is unchanged
	req.Equal(before, f.registry.ListParticipants("math101"))
	req.Equal(1, f.registry.RoomCount())
}

func TestSessionService_ToggleVideo_OnlyVideoChanges(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newSessionFixture()
	a := mocks.NewMockSender(ctrl)
	b := mocks.NewMockSender(ctrl)
	f.router.Attach("A", a)
	f.router.Attach("B", b)
	a.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	b.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true).AnyTimes()

	f.service.Join("A", joinCmd("math101", "Alice", domain.RoleTeacher, "p1"))
	f.service.Join("B", joinCmd("math101", "Bob", domain.RoleStudent, "p2"))
	before, _ := f.registry.GetParticipant("math101", "B")

	f.service.ToggleVideo("B", domain.ToggleVideoCommand{RoomRef: domain.RoomRef{Room: "math101"}, IsVideoOn: lo.ToPtr(false)})

	after, _ := f.registry.GetParticipant("math101", "B")
	req.False(after.IsVideoOn)
	before.IsVideoOn = false
	req.Equal(before, after)
}

func TestSessionService_Leave_UnsubscribesAndNotifies(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newSessionFixture()
	a := mocks.NewMockSender(ctrl)
	b := mocks.NewMockSender(ctrl)
	f.router.Attach("A", a)
	f.router.Attach("B", b)
	a.EXPECT().Send(event.RoomParticipants, gomock.Any()).Return(true).Times(1)
	a.EXPECT().Send(event.UserJoined, gomock.Any()).Return(true).Times(1)
	b.EXPECT().Send(event.RoomParticipants, gomock.Any()).Return(true).Times(1)

	f.service.Join("A", joinCmd("math101", "Alice", domain.RoleTeacher, "p1"))
	f.service.Join("B", joinCmd("math101", "Bob", domain.RoleStudent, "p2"))

	// When Bob leaves, Alice is told
	a.EXPECT().Send(event.UserLeft, event.UserLeftPayload{ID: "B", Name: "Bob", PeerID: "p2"}).Return(true).Times(1)
	f.service.Leave("B", domain.LeaveRoomCommand{RoomRef: domain.RoomRef{Room: "math101"}})

	// And Bob is no longer part of the broadcast group
	req.Equal([]domain.ConnectionID{"A"}, f.router.Subscribers("math101"))

	// And leaving again is a no-op
	f.service.Leave("B", domain.LeaveRoomCommand{RoomRef: domain.RoomRef{Room: "math101"}})
}

func TestSessionService_Disconnect_AllRooms_Idempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newSessionFixture()
	a := mocks.NewMockSender(ctrl)
	b := mocks.NewMockSender(ctrl)
	c := mocks.NewMockSender(ctrl)
	f.router.Attach("A", a)
	f.router.Attach("B", b)
	f.router.Attach("C", c)
	b.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	a.EXPECT().Send(event.RoomParticipants, gomock.Any()).Return(true).Times(1)
	a.EXPECT().Send(event.UserJoined, gomock.Any()).Return(true).Times(1)
	c.EXPECT().Send(event.RoomParticipants, gomock.Any()).Return(true).Times(1)
	c.EXPECT().Send(event.UserJoined, gomock.Any()).Return(true).Times(1)

	// Given B is in two rooms, alone in a third
	f.service.Join("A", joinCmd("math101", "Alice", domain.RoleTeacher, "p1"))
	f.service.Join("C", joinCmd("bio", "Carol", domain.RoleTeacher, "p3"))
	f.service.Join("B", joinCmd("math101", "Bob", domain.RoleStudent, "p2"))
	f.service.Join("B", joinCmd("bio", "Bob", domain.RoleStudent, "p2"))
	f.service.Join("B", joinCmd("solo", "Bob", domain.RoleStudent, "p2"))

	left := event.UserLeftPayload{ID: "B", Name: "Bob", PeerID: "p2"}
	a.EXPECT().Send(event.UserLeft, left).Return(true).Times(1)
	c.EXPECT().Send(event.UserLeft, left).Return(true).Times(1)

	// When B disconnects twice
	f.service.Disconnect("B")
	f.service.Disconnect("B")

	// Then every membership is gone and the solo room deleted
	req.False(f.registry.HasRoom("solo"))
	req.Equal(1, f.registry.ParticipantCount("math101"))
	req.Equal(1, f.registry.ParticipantCount("bio"))
	req.Equal(2, f.registry.RoomCount())
	req.Equal(2, f.router.ConnectionCount())
}
