package rfp

import "errors"

// RequestID identifies a request for proposal. Rooms are keyed by it.
type RequestID int64

func (id RequestID) Int64() int64 { return int64(id) }

func (id RequestID) Valid() bool { return id > 0 }

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

const (
	MaxTitleLength = 200
)

var (
	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title exceeds maximum length")
	ErrEmptyDescription = errors.New("description is required")
	ErrAlreadyClosed    = errors.New("request is already closed")
	ErrNotOwner         = errors.New("only the buyer who posted the request can do this")
	ErrBidMismatch      = errors.New("bid does not belong to this request")
)
