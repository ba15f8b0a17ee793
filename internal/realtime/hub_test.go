//go:build unit

package realtime_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/pkg/config"
	"syncro-backend/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHub(buffer int) *realtime.Hub {
	return realtime.NewHub(config.RealtimeConfig{SendBuffer: buffer}, nil)
}

func seller(id int64) user.Identity {
	return user.Identity{UserID: id, Role: user.RoleSeller}
}

func TestHubSend(t *testing.T) {
	ctx := context.Background()

	t.Run("queues an encoded envelope", func(t *testing.T) {
		hub := newHub(4)
		s := hub.Register(seller(1))

		require.NoError(t, hub.Send(ctx, s.ID(), realtime.EventBidAdded, realtime.RoomPayload{RequestID: 3}))

		msg := <-s.Outbound()
		var env realtime.Envelope
		require.NoError(t, json.Unmarshal(msg, &env))
		assert.Equal(t, realtime.EventBidAdded, env.Type)
		assert.JSONEq(t, `{"request_id":3}`, string(env.Payload))
	})

	t.Run("unknown connection", func(t *testing.T) {
		hub := newHub(1)
		err := hub.Send(ctx, realtime.NewConnID(), realtime.EventBidAdded, nil)
		assert.ErrorIs(t, err, realtime.ErrUnknownConnection)
	})

	t.Run("full queue evicts the session without waiting", func(t *testing.T) {
		hub := newHub(1)
		s := hub.Register(seller(1))
		require.NoError(t, hub.Send(ctx, s.ID(), realtime.EventBidAdded, 1))

		started := time.Now()
		err := hub.Send(ctx, s.ID(), realtime.EventBidAdded, 2)
		assert.ErrorIs(t, err, realtime.ErrSlowConsumer)
		assert.Less(t, time.Since(started), 50*time.Millisecond)

		select {
		case <-s.Done():
		default:
			t.Fatal("evicted session should be done")
		}
		assert.Equal(t, 0, hub.Len())
		assert.ErrorIs(t, hub.Send(ctx, s.ID(), realtime.EventBidAdded, 3), realtime.ErrUnknownConnection)
	})

	t.Run("cancelled context queues nothing", func(t *testing.T) {
		hub := newHub(1)
		s := hub.Register(seller(1))

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, hub.Send(cctx, s.ID(), realtime.EventBidAdded, 1), context.Canceled)
		assert.Empty(t, s.Outbound())
		assert.Equal(t, 1, hub.Len())
	})

	t.Run("unregistered session stops accepting", func(t *testing.T) {
		hub := newHub(1)
		s := hub.Register(seller(1))
		hub.Unregister(s.ID())
		hub.Unregister(s.ID())

		select {
		case <-s.Done():
		default:
			t.Fatal("session should be done")
		}
		assert.ErrorIs(t, hub.Send(ctx, s.ID(), realtime.EventBidAdded, nil), realtime.ErrUnknownConnection)
		assert.Equal(t, 0, hub.Len())
	})
}

func TestHubCloseAll(t *testing.T) {
	hub := newHub(1)
	a := hub.Register(seller(1))
	b := hub.Register(seller(2))
	require.Equal(t, 2, hub.Len())

	hub.CloseAll()

	for _, s := range []*realtime.Session{a, b} {
		select {
		case <-s.Done():
		case <-time.After(time.Second):
			t.Fatal("session not closed")
		}
	}
	assert.Equal(t, 0, hub.Len())
}

func TestEncode(t *testing.T) {
	msg, err := realtime.Encode(realtime.EventError, realtime.ErrorPayload{
		Event: realtime.EventSubmitBid, Kind: "validation_error", Message: "amount is required",
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"error","payload":{"event":"submit_bid","kind":"validation_error","message":"amount is required","retryable":false}}`,
		string(msg))
}
