package realtime

import (
	"sync"

	"syncro-backend/internal/domain/rfp"
)

// Registry maps each request to the connections subscribed to its bid stream.
// Membership is in memory only and starts empty on every process start.
type Registry struct {
	mu          sync.RWMutex
	rooms       map[rfp.RequestID]map[ConnID]struct{}
	memberships map[ConnID]map[rfp.RequestID]struct{}
	metrics     *Metrics
}

func NewRegistry(metrics *Metrics) *Registry {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return &Registry{
		rooms:       make(map[rfp.RequestID]map[ConnID]struct{}),
		memberships: make(map[ConnID]map[rfp.RequestID]struct{}),
		metrics:     metrics,
	}
}

// Join adds conn to the room. It reports whether the membership is new.
func (r *Registry) Join(conn ConnID, requestID rfp.RequestID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[requestID]
	if !ok {
		members = make(map[ConnID]struct{})
		r.rooms[requestID] = members
	}
	if _, exists := members[conn]; exists {
		return false
	}
	members[conn] = struct{}{}

	joined, ok := r.memberships[conn]
	if !ok {
		joined = make(map[rfp.RequestID]struct{})
		r.memberships[conn] = joined
	}
	joined[requestID] = struct{}{}

	r.metrics.Rooms.Set(float64(len(r.rooms)))
	return true
}

// Leave removes conn from the room. It reports whether conn was a member.
func (r *Registry) Leave(conn ConnID, requestID rfp.RequestID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.removeLocked(conn, requestID) {
		return false
	}
	if joined := r.memberships[conn]; len(joined) == 0 {
		delete(r.memberships, conn)
	}
	r.metrics.Rooms.Set(float64(len(r.rooms)))
	return true
}

// LeaveAll removes conn from every room and returns the rooms it left.
func (r *Registry) LeaveAll(conn ConnID) []rfp.RequestID {
	r.mu.Lock()
	defer r.mu.Unlock()

	joined := r.memberships[conn]
	left := make([]rfp.RequestID, 0, len(joined))
	for requestID := range joined {
		r.removeLocked(conn, requestID)
		left = append(left, requestID)
	}
	delete(r.memberships, conn)

	r.metrics.Rooms.Set(float64(len(r.rooms)))
	return left
}

// SubscribersOf returns a copy of the room's members. Later joins and leaves
// do not affect the returned slice.
func (r *Registry) SubscribersOf(requestID rfp.RequestID) []ConnID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[requestID]
	snapshot := make([]ConnID, 0, len(members))
	for conn := range members {
		snapshot = append(snapshot, conn)
	}
	return snapshot
}

// RoomsOf returns the rooms conn currently belongs to.
func (r *Registry) RoomsOf(conn ConnID) []rfp.RequestID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	joined := r.memberships[conn]
	rooms := make([]rfp.RequestID, 0, len(joined))
	for requestID := range joined {
		rooms = append(rooms, requestID)
	}
	return rooms
}

func (r *Registry) removeLocked(conn ConnID, requestID rfp.RequestID) bool {
	members, ok := r.rooms[requestID]
	if !ok {
		return false
	}
	if _, exists := members[conn]; !exists {
		return false
	}
	delete(members, conn)
	if len(members) == 0 {
		delete(r.rooms, requestID)
	}
	if joined, ok := r.memberships[conn]; ok {
		delete(joined, requestID)
	}
	return true
}
