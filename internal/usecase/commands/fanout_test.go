//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/pkg/config"
	"syncro-backend/internal/realtime"
	"syncro-backend/internal/usecase/commands"
	commandsmock "syncro-backend/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRealtimeConfig() config.RealtimeConfig {
	return config.RealtimeConfig{
		SendBuffer:      1,
		DeliveryTimeout: 50 * time.Millisecond,
		AppendTimeout:   time.Second,
		FanoutWorkers:   4,
	}
}

// drain empties a session queue in the background, the way a healthy write loop does.
func drain(t *testing.T, s *realtime.Session) <-chan []byte {
	t.Helper()
	got := make(chan []byte, 16)
	go func() {
		for {
			select {
			case msg := <-s.Outbound():
				got <- msg
			case <-s.Done():
				return
			}
		}
	}()
	return got
}

func TestFanoutBroadcast(t *testing.T) {
	ctx := context.Background()
	const room rfp.RequestID = 7

	t.Run("delivers to every member of the room only", func(t *testing.T) {
		cfg := testRealtimeConfig()
		hub := realtime.NewHub(cfg, nil)
		rooms := realtime.NewRegistry(nil)
		fanout := commands.NewFanout(rooms, hub, cfg, nil)

		a := hub.Register(user.Identity{UserID: 1, Role: user.RoleClient})
		b := hub.Register(user.Identity{UserID: 2, Role: user.RoleSeller})
		outsider := hub.Register(user.Identity{UserID: 3, Role: user.RoleSeller})
		defer hub.CloseAll()
		rooms.Join(a.ID(), room)
		rooms.Join(b.ID(), room)
		rooms.Join(outsider.ID(), room+1)

		warnings := fanout.Broadcast(ctx, room, realtime.EventRequestClosed, realtime.RoomPayload{RequestID: int64(room)})
		assert.Empty(t, warnings)

		for _, s := range []*realtime.Session{a, b} {
			var env realtime.Envelope
			require.NoError(t, json.Unmarshal(<-s.Outbound(), &env))
			assert.Equal(t, realtime.EventRequestClosed, env.Type)
		}
		assert.Empty(t, outsider.Outbound())
	})

	t.Run("slow subscriber does not hold up the others", func(t *testing.T) {
		cfg := testRealtimeConfig()
		hub := realtime.NewHub(cfg, nil)
		rooms := realtime.NewRegistry(nil)
		fanout := commands.NewFanout(rooms, hub, cfg, nil)
		defer hub.CloseAll()

		slow := hub.Register(user.Identity{UserID: 1, Role: user.RoleSeller})
		rooms.Join(slow.ID(), room)
		// Fill the slow queue so the next send finds it full.
		require.NoError(t, hub.Send(ctx, slow.ID(), realtime.EventBidAdded, 0))

		fast := make([]<-chan []byte, 0, 10)
		for i := range 10 {
			s := hub.Register(user.Identity{UserID: int64(i + 10), Role: user.RoleSeller})
			rooms.Join(s.ID(), room)
			fast = append(fast, drain(t, s))
		}

		started := time.Now()
		warnings := fanout.Broadcast(ctx, room, realtime.EventBidAdded, map[string]int{"id": 1})
		elapsed := time.Since(started)

		require.Len(t, warnings, 1)
		assert.Equal(t, slow.ID(), warnings[0].Conn)
		assert.Equal(t, commands.ReasonSlowConsumer, warnings[0].Reason)
		assert.Equal(t, realtime.EventBidAdded, warnings[0].Event)
		assert.Less(t, elapsed, cfg.DeliveryTimeout)

		select {
		case <-slow.Done():
		default:
			t.Fatal("slow subscriber should have been evicted")
		}

		for _, got := range fast {
			select {
			case <-got:
			case <-time.After(time.Second):
				t.Fatal("fast subscriber did not receive the event")
			}
		}
	})

	t.Run("disconnected member becomes a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := commandsmock.NewMockRoomDirectory(ctrl)
		sender := commandsmock.NewMockMessageSender(ctrl)
		fanout := commands.NewFanout(rooms, sender, testRealtimeConfig(), nil)

		gone, alive := realtime.NewConnID(), realtime.NewConnID()
		rooms.EXPECT().SubscribersOf(room).Return([]realtime.ConnID{gone, alive})
		sender.EXPECT().Send(gomock.Any(), gone, realtime.EventBidAdded, gomock.Any()).Return(realtime.ErrUnknownConnection)
		sender.EXPECT().Send(gomock.Any(), alive, realtime.EventBidAdded, gomock.Any()).Return(nil)

		warnings := fanout.Broadcast(ctx, room, realtime.EventBidAdded, nil)

		require.Len(t, warnings, 1)
		assert.Equal(t, gone, warnings[0].Conn)
		assert.Equal(t, commands.ReasonDisconnected, warnings[0].Reason)
		assert.ErrorIs(t, warnings[0].Err, realtime.ErrUnknownConnection)
	})

	t.Run("each send gets its own deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := commandsmock.NewMockRoomDirectory(ctrl)
		sender := commandsmock.NewMockMessageSender(ctrl)
		fanout := commands.NewFanout(rooms, sender, testRealtimeConfig(), nil)

		conn := realtime.NewConnID()
		rooms.EXPECT().SubscribersOf(room).Return([]realtime.ConnID{conn})
		sender.EXPECT().Send(gomock.Any(), conn, realtime.EventBidAdded, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ realtime.ConnID, _ string, _ any) error {
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				<-ctx.Done()
				return ctx.Err()
			})

		warnings := fanout.Broadcast(ctx, room, realtime.EventBidAdded, nil)

		require.Len(t, warnings, 1)
		assert.Equal(t, commands.ReasonTimeout, warnings[0].Reason)
	})

	t.Run("empty room sends nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := commandsmock.NewMockRoomDirectory(ctrl)
		sender := commandsmock.NewMockMessageSender(ctrl)
		fanout := commands.NewFanout(rooms, sender, testRealtimeConfig(), nil)

		rooms.EXPECT().SubscribersOf(room).Return(nil)
		assert.Nil(t, fanout.Broadcast(ctx, room, realtime.EventBidAdded, nil))
	})
}
