package commands

import (
	"context"

	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/realtime"
)

// RoomDirectory answers who is subscribed to a request's bid stream.
type RoomDirectory interface {
	SubscribersOf(requestID rfp.RequestID) []realtime.ConnID
}

// MessageSender delivers one outbound event to one connection.
type MessageSender interface {
	Send(ctx context.Context, conn realtime.ConnID, event string, payload any) error
}
