package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	id          int64
	buyerID     int64
	sellerID    int64
	listingID   *int64
	serviceName string
	amount      decimal.Decimal
	status      Status
	createdAt   time.Time
	completedAt *time.Time
}

func NewOrder(buyerID, sellerID int64, listingID *int64, serviceName string, amount decimal.Decimal) (*Order, error) {
	if buyerID == sellerID {
		return nil, ErrSelfOrder
	}
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		return nil, ErrEmptyService
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return &Order{
		buyerID:     buyerID,
		sellerID:    sellerID,
		listingID:   listingID,
		serviceName: serviceName,
		amount:      amount,
		status:      StatusPending,
	}, nil
}

func Reconstruct(id, buyerID, sellerID int64, listingID *int64, serviceName string, amount decimal.Decimal, status Status, createdAt time.Time, completedAt *time.Time) *Order {
	return &Order{
		id:          id,
		buyerID:     buyerID,
		sellerID:    sellerID,
		listingID:   listingID,
		serviceName: serviceName,
		amount:      amount,
		status:      status,
		createdAt:   createdAt,
		completedAt: completedAt,
	}
}

func (o *Order) IsParticipant(userID int64) bool {
	return userID == o.buyerID || userID == o.sellerID
}

// Counterpart returns the other party of the order.
func (o *Order) Counterpart(userID int64) (int64, error) {
	switch userID {
	case o.buyerID:
		return o.sellerID, nil
	case o.sellerID:
		return o.buyerID, nil
	default:
		return 0, ErrNotParticipant
	}
}

func (o *Order) Complete(actorID int64, now time.Time) error {
	if actorID != o.sellerID {
		if o.IsParticipant(actorID) {
			return ErrNotSeller
		}
		return ErrNotParticipant
	}
	if o.status != StatusPending {
		return ErrNotPending
	}
	o.status = StatusCompleted
	o.completedAt = &now
	return nil
}

func (o *Order) Cancel(actorID int64) error {
	if !o.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if o.status != StatusPending {
		return ErrNotPending
	}
	o.status = StatusCancelled
	return nil
}

func (o *Order) ID() int64               { return o.id }
func (o *Order) BuyerID() int64          { return o.buyerID }
func (o *Order) SellerID() int64         { return o.sellerID }
func (o *Order) ListingID() *int64       { return o.listingID }
func (o *Order) ServiceName() string     { return o.serviceName }
func (o *Order) Amount() decimal.Decimal { return o.amount }
func (o *Order) Status() Status          { return o.status }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) CompletedAt() *time.Time { return o.completedAt }
