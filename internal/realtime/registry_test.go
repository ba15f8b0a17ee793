//go:build unit

package realtime_test

import (
	"sync"
	"testing"

	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/realtime"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	t.Run("join is idempotent", func(t *testing.T) {
		r := realtime.NewRegistry(nil)
		conn := realtime.NewConnID()

		assert.True(t, r.Join(conn, 1))
		assert.False(t, r.Join(conn, 1))
		assert.Equal(t, []realtime.ConnID{conn}, r.SubscribersOf(1))
	})

	t.Run("leave of a non-member is a no-op", func(t *testing.T) {
		r := realtime.NewRegistry(nil)
		assert.False(t, r.Leave(realtime.NewConnID(), 1))

		conn := realtime.NewConnID()
		r.Join(conn, 1)
		assert.False(t, r.Leave(conn, 2))
		assert.Len(t, r.SubscribersOf(1), 1)
	})

	t.Run("empty room has no subscribers", func(t *testing.T) {
		r := realtime.NewRegistry(nil)
		assert.Empty(t, r.SubscribersOf(99))
	})

	t.Run("leave all removes every membership", func(t *testing.T) {
		r := realtime.NewRegistry(nil)
		conn := realtime.NewConnID()
		other := realtime.NewConnID()
		r.Join(conn, 1)
		r.Join(conn, 2)
		r.Join(other, 2)

		left := r.LeaveAll(conn)

		assert.ElementsMatch(t, []rfp.RequestID{1, 2}, left)
		assert.Empty(t, r.SubscribersOf(1))
		assert.Equal(t, []realtime.ConnID{other}, r.SubscribersOf(2))
		assert.Empty(t, r.RoomsOf(conn))
		assert.Empty(t, r.LeaveAll(conn))
	})

	t.Run("snapshot is not affected by later changes", func(t *testing.T) {
		r := realtime.NewRegistry(nil)
		a, b := realtime.NewConnID(), realtime.NewConnID()
		r.Join(a, 1)

		snapshot := r.SubscribersOf(1)
		r.Join(b, 1)
		r.Leave(a, 1)

		assert.Equal(t, []realtime.ConnID{a}, snapshot)
		assert.Equal(t, []realtime.ConnID{b}, r.SubscribersOf(1))
	})

	t.Run("concurrent joins and leaves keep the index consistent", func(t *testing.T) {
		r := realtime.NewRegistry(nil)
		conns := make([]realtime.ConnID, 50)
		for i := range conns {
			conns[i] = realtime.NewConnID()
		}

		var wg sync.WaitGroup
		for _, c := range conns {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for room := rfp.RequestID(1); room <= 5; room++ {
					r.Join(c, room)
					_ = r.SubscribersOf(room)
				}
				r.Leave(c, 5)
			}()
		}
		wg.Wait()

		for room := rfp.RequestID(1); room <= 4; room++ {
			assert.ElementsMatch(t, conns, r.SubscribersOf(room))
		}
		assert.Empty(t, r.SubscribersOf(5))
		for _, c := range conns {
			assert.Len(t, r.RoomsOf(c), 4)
		}
	})
}
