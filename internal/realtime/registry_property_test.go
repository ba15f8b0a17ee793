//go:build unit

package realtime_test

import (
	"testing"

	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/realtime"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRegistryProperties(t *testing.T) {
	rapid.Check(t, rapid.Run(&registryModel{}))
}

// registryModel drives Registry against a plain membership set.
type registryModel struct {
	registry *realtime.Registry
	conns    []realtime.ConnID
	rooms    []rfp.RequestID

	model map[realtime.ConnID]map[rfp.RequestID]bool
}

func (m *registryModel) Init(t *rapid.T) {
	m.registry = realtime.NewRegistry(nil)
	m.conns = []realtime.ConnID{realtime.NewConnID(), realtime.NewConnID(), realtime.NewConnID()}
	m.rooms = []rfp.RequestID{1, 2, 3}
	m.model = make(map[realtime.ConnID]map[rfp.RequestID]bool)
}

func (m *registryModel) pick(t *rapid.T) (realtime.ConnID, rfp.RequestID) {
	c := rapid.IntRange(0, len(m.conns)-1).Draw(t, "conn").(int)
	r := rapid.IntRange(0, len(m.rooms)-1).Draw(t, "room").(int)
	return m.conns[c], m.rooms[r]
}

func (m *registryModel) Join(t *rapid.T) {
	conn, room := m.pick(t)
	added := m.registry.Join(conn, room)
	require.Equal(t, !m.model[conn][room], added)
	if m.model[conn] == nil {
		m.model[conn] = make(map[rfp.RequestID]bool)
	}
	m.model[conn][room] = true
}

func (m *registryModel) Leave(t *rapid.T) {
	conn, room := m.pick(t)
	removed := m.registry.Leave(conn, room)
	require.Equal(t, m.model[conn][room], removed)
	delete(m.model[conn], room)
}

func (m *registryModel) LeaveAll(t *rapid.T) {
	conn, _ := m.pick(t)
	left := m.registry.LeaveAll(conn)
	require.Len(t, left, len(m.model[conn]))
	delete(m.model, conn)
}

func (m *registryModel) Check(t *rapid.T) {
	for _, room := range m.rooms {
		var want []realtime.ConnID
		for conn, joined := range m.model {
			if joined[room] {
				want = append(want, conn)
			}
		}
		require.ElementsMatch(t, want, m.registry.SubscribersOf(room), "room %d", room)
	}
	for _, conn := range m.conns {
		var want []rfp.RequestID
		for room := range m.model[conn] {
			want = append(want, room)
		}
		require.ElementsMatch(t, want, m.registry.RoomsOf(conn))
	}
}
