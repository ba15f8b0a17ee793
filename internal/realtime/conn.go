package realtime

import "github.com/google/uuid"

// ConnID identifies one websocket connection for its lifetime.
type ConnID uuid.UUID

func NewConnID() ConnID {
	return ConnID(uuid.New())
}

func (c ConnID) String() string {
	return uuid.UUID(c).String()
}
