package rfp

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Request struct {
	id            RequestID
	buyerID       int64
	title         string
	description   string
	status        Status
	acceptedBidID *int64
	createdAt     time.Time
	closedAt      *time.Time
}

func NewRequest(buyerID int64, title, description string) (*Request, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}

	return &Request{
		buyerID:     buyerID,
		title:       title,
		description: description,
		status:      StatusOpen,
	}, nil
}

func Reconstruct(id RequestID, buyerID int64, title, description string, status Status, acceptedBidID *int64, createdAt time.Time, closedAt *time.Time) *Request {
	return &Request{
		id:            id,
		buyerID:       buyerID,
		title:         title,
		description:   description,
		status:        status,
		acceptedBidID: acceptedBidID,
		createdAt:     createdAt,
		closedAt:      closedAt,
	}
}

// AcceptsBids reports whether new bids may still be appended.
func (r *Request) AcceptsBids() bool {
	return r.status == StatusOpen
}

// Cancel closes the request without choosing a bid.
func (r *Request) Cancel(actorID int64, now time.Time) error {
	if err := r.checkClosable(actorID); err != nil {
		return err
	}
	r.close(now)
	return nil
}

// Accept closes the request with the given bid as the winner.
func (r *Request) Accept(actorID int64, bidID int64, bidRequestID RequestID, now time.Time) error {
	if err := r.checkClosable(actorID); err != nil {
		return err
	}
	if bidRequestID != r.id {
		return ErrBidMismatch
	}
	r.close(now)
	r.acceptedBidID = &bidID
	return nil
}

func (r *Request) checkClosable(actorID int64) error {
	if actorID != r.buyerID {
		return ErrNotOwner
	}
	if !r.AcceptsBids() {
		return ErrAlreadyClosed
	}
	return nil
}

func (r *Request) close(now time.Time) {
	r.status = StatusClosed
	r.closedAt = &now
}

func (r *Request) ID() RequestID         { return r.id }
func (r *Request) BuyerID() int64        { return r.buyerID }
func (r *Request) Title() string         { return r.title }
func (r *Request) Description() string   { return r.description }
func (r *Request) Status() Status        { return r.status }
func (r *Request) AcceptedBidID() *int64 { return r.acceptedBidID }
func (r *Request) CreatedAt() time.Time  { return r.createdAt }
func (r *Request) ClosedAt() *time.Time  { return r.closedAt }
