package realtime

import (
	"context"
	"errors"
	"sync"

	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/pkg/config"
)

var (
	ErrUnknownConnection = errors.New("unknown connection")
	ErrConnectionClosed  = errors.New("connection closed")
	ErrSlowConsumer      = errors.New("send queue full, connection evicted")
)

// Session is the server side of one websocket connection.
type Session struct {
	id       ConnID
	identity user.Identity
	send     chan []byte
	done     chan struct{}
	once     sync.Once
}

func (s *Session) ID() ConnID              { return s.id }
func (s *Session) Identity() user.Identity { return s.identity }

// Outbound is drained by the connection's write loop.
func (s *Session) Outbound() <-chan []byte { return s.send }

// Done is closed once the session is unregistered.
func (s *Session) Done() <-chan struct{} { return s.done }

func (s *Session) close() {
	s.once.Do(func() { close(s.done) })
}

// enqueue never blocks. A full queue means the peer has stopped reading.
func (s *Session) enqueue(msg []byte) error {
	select {
	case <-s.done:
		return ErrConnectionClosed
	default:
	}

	select {
	case s.send <- msg:
		return nil
	default:
		return ErrSlowConsumer
	}
}

// Hub is the session table. It delivers outbound events to connections by id.
type Hub struct {
	mu       sync.RWMutex
	sessions map[ConnID]*Session

	sendBuffer int
	metrics    *Metrics
}

func NewHub(cfg config.RealtimeConfig, metrics *Metrics) *Hub {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return &Hub{
		sessions:   make(map[ConnID]*Session),
		sendBuffer: cfg.SendBuffer,
		metrics:    metrics,
	}
}

// Register opens a session for an authenticated identity.
func (h *Hub) Register(identity user.Identity) *Session {
	s := &Session{
		id:       NewConnID(),
		identity: identity,
		send:     make(chan []byte, h.sendBuffer),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	h.sessions[s.id] = s
	n := len(h.sessions)
	h.mu.Unlock()

	h.metrics.Connections.Set(float64(n))
	return s
}

// Unregister removes the session and signals its write loop to stop. Safe to call twice.
func (h *Hub) Unregister(id ConnID) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	n := len(h.sessions)
	h.mu.Unlock()

	if ok {
		s.close()
		h.metrics.Connections.Set(float64(n))
	}
}

// Send encodes the event and queues it for one connection without waiting.
// A connection whose queue is full is unregistered on the spot; its write
// loop sees Done and closes the socket, and the gateway drops its rooms.
func (h *Hub) Send(ctx context.Context, id ConnID, event string, payload any) error {
	h.mu.RLock()
	s, ok := h.sessions[id]
	h.mu.RUnlock()
	if !ok {
		return ErrUnknownConnection
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := Encode(event, payload)
	if err != nil {
		return err
	}
	if err := s.enqueue(msg); err != nil {
		if errors.Is(err, ErrSlowConsumer) {
			h.metrics.Evictions.Add(1)
			h.Unregister(id)
		}
		return err
	}
	return nil
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// CloseAll unregisters every session. Write loops observe Done and close their sockets.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[ConnID]*Session)
	h.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
	h.metrics.Connections.Set(0)
}
