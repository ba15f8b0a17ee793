package order

import "errors"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

var (
	ErrSelfOrder      = errors.New("cannot order from yourself")
	ErrEmptyService   = errors.New("service name is required")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrNotParticipant = errors.New("user is not a participant of this order")
	ErrNotSeller      = errors.New("only the seller can complete an order")
	ErrNotPending     = errors.New("order is no longer pending")
	ErrNotCompleted   = errors.New("order is not completed")
)
