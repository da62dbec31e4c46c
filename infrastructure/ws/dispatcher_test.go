package ws

import (
	"classroom-relay/domain"
	"classroom-relay/mocks"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherFixture struct {
	sessions   *mocks.MockISessionService
	relay      *mocks.MockIRelayService
	recorder   *mocks.MockDeliveryRecorder
	dispatcher *Dispatcher
}

func newDispatcherFixture(t *testing.T) dispatcherFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := dispatcherFixture{
		sessions: mocks.NewMockISessionService(ctrl),
		relay:    mocks.NewMockIRelayService(ctrl),
		recorder: mocks.NewMockDeliveryRecorder(ctrl),
	}
	f.dispatcher = NewDispatcher(log, f.sessions, f.relay, f.recorder)
	f.recorder.EXPECT().IncrEventsReceived().AnyTimes()
	return f
}

func TestDispatcher_RoutesTypedPayloads(t *testing.T) {
	f := newDispatcherFixture(t)
	connID := domain.ConnectionID("A")

	f.sessions.EXPECT().Join(connID, domain.JoinRoomCommand{
		RoomRef:  domain.RoomRef{Room: "math101"},
		UserName: "Alice",
		UserRole: domain.RoleTeacher,
		PeerID:   "p1",
	}).Times(1)
	f.sessions.EXPECT().ToggleMic(connID, domain.ToggleMicCommand{
		RoomRef: domain.RoomRef{Room: "math101"},
		IsMuted: lo.ToPtr(true),
	}).Times(1)
	f.sessions.EXPECT().ToggleVideo(connID, domain.ToggleVideoCommand{
		RoomRef:   domain.RoomRef{Room: "math101"},
		IsVideoOn: lo.ToPtr(false),
	}).Times(1)
	f.sessions.EXPECT().Leave(connID, domain.LeaveRoomCommand{RoomRef: domain.RoomRef{Room: "math101"}}).Times(1)
	f.relay.EXPECT().SendMessage(domain.SendMessageCommand{
		RoomRef: domain.RoomRef{Room: "math101"},
		Message: "hello",
		Sender:  "Alice",
	}).Times(1)
	f.relay.EXPECT().RelayCount(connID, domain.ReportCountCommand{
		RoomRef: domain.RoomRef{Room: "math101"},
		Count:   lo.ToPtr(4.0),
		PeerID:  lo.ToPtr("p2"),
	}).Times(1)

	frames := []string{
		`{"event":"join-room","data":{"roomId":"math101","userName":"Alice","userRole":"teacher","peerId":"p1"}}`,
		`{"event":"toggle-mic","data":{"roomId":"math101","isMuted":true}}`,
		`{"event":"toggle-video","data":{"roomId":"math101","isVideoOn":false}}`,
		`{"event":"send-message","data":{"roomId":"math101","message":"hello","sender":"Alice"}}`,
		`{"event":"report-count","data":{"roomId":"math101","count":4,"peerId":"p2"}}`,
		`{"event":"leave-room","data":{"roomId":"math101"}}`,
	}
	for _, frame := range frames {
		f.dispatcher.Dispatch(connID, []byte(frame))
	}
}

func TestDispatcher_LegacyAliases(t *testing.T) {
	f := newDispatcherFixture(t)
	connID := domain.ConnectionID("A")

	f.sessions.EXPECT().Join(connID, domain.JoinRoomCommand{
		RoomRef:  domain.RoomRef{Class: "math101"},
		UserName: "Alice",
		UserRole: domain.RoleTeacher,
		PeerID:   "p1",
	}).Times(1)
	f.sessions.EXPECT().Leave(connID, domain.LeaveRoomCommand{RoomRef: domain.RoomRef{Class: "math101"}}).Times(1)
	f.relay.EXPECT().RelayCount(connID, gomock.Any()).Times(1)

	f.dispatcher.Dispatch(connID, []byte(`{"event":"join-class","data":{"classId":"math101","userName":"Alice","userRole":"teacher","peerId":"p1"}}`))
	f.dispatcher.Dispatch(connID, []byte(`{"event":"student-send-count","data":{"classId":"math101","count":2,"peerId":"p2"}}`))
	f.dispatcher.Dispatch(connID, []byte(`{"event":"leave-class","data":{"classId":"math101"}}`))
}

func TestDispatcher_EmptyTextIsStillRouted(t *testing.T) {
	f := newDispatcherFixture(t)
	connID := domain.ConnectionID("A")

	// Then empty strings are valid values, only the room gates routing
	f.relay.EXPECT().SendMessage(domain.SendMessageCommand{
		RoomRef: domain.RoomRef{Room: "math101"},
		Message: "",
		Sender:  "Alice",
	}).Times(1)
	f.sessions.EXPECT().Join(connID, domain.JoinRoomCommand{
		RoomRef:  domain.RoomRef{Room: "math101"},
		UserName: "",
		PeerID:   "p1",
	}).Times(1)
	f.recorder.EXPECT().IncrEventsDropped().Times(0)

	f.dispatcher.Dispatch(connID, []byte(`{"event":"send-message","data":{"roomId":"math101","message":"","sender":"Alice"}}`))
	f.dispatcher.Dispatch(connID, []byte(`{"event":"join-room","data":{"roomId":"math101","userName":"","peerId":"p1"}}`))
}

func TestDispatcher_DropsMalformedInput(t *testing.T) {
	f := newDispatcherFixture(t)
	connID := domain.ConnectionID("A")

	frames := []string{
		`not json`,
		`{"event":"dance","data":{}}`,
		`{"event":"join-room"}`,
		`{"event":"join-room","data":{"userName":"Alice"}}`,
		`{"event":"toggle-mic","data":{"roomId":"math101","isMuted":"yes"}}`,
		`{"event":"toggle-video","data":{"roomId":"math101"}}`,
		`{"event":"report-count","data":{"roomId":"math101","count":"many","peerId":"p2"}}`,
		`{"event":"report-count","data":{"roomId":"math101","count":3,"peerId":null}}`,
		`{"event":"send-message","data":{"message":"hi","sender":"Alice"}}`,
	}
	// Then no service is ever reached and every frame is counted as dropped
	f.recorder.EXPECT().IncrEventsDropped().Times(len(frames))

	for _, frame := range frames {
		f.dispatcher.Dispatch(connID, []byte(frame))
	}
}

func TestDispatcher_ContainsHandlerPanic(t *testing.T) {
	req := require.New(t)
	f := newDispatcherFixture(t)
	connID := domain.ConnectionID("A")

	f.sessions.EXPECT().Leave(connID, gomock.Any()).Do(func(domain.ConnectionID, domain.LeaveRoomCommand) {
		panic("boom")
	}).Times(1)
	f.recorder.EXPECT().IncrEventsDropped().Times(1)

	req.NotPanics(func() {
		f.dispatcher.Dispatch(connID, []byte(`{"event":"leave-room","data":{"roomId":"math101"}}`))
	})
}
