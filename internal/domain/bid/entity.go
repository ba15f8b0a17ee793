package bid

import (
	"time"

	"syncro-backend/internal/domain/rfp"

	"github.com/shopspring/decimal"
)

// Draft is a validated bid that has not been stored yet. It has no id or timestamp.
type Draft struct {
	requestID rfp.RequestID
	sellerID  int64
	amount    Amount
	message   Message
}

func NewDraft(requestID rfp.RequestID, sellerID int64, amount float64, message *string) (*Draft, error) {
	if !requestID.Valid() {
		return nil, ErrRequestRequired
	}
	if sellerID <= 0 {
		return nil, ErrSellerRequired
	}

	a, err := NewAmount(amount)
	if err != nil {
		return nil, err
	}

	m, err := NewMessage(message)
	if err != nil {
		return nil, err
	}

	return &Draft{
		requestID: requestID,
		sellerID:  sellerID,
		amount:    a,
		message:   m,
	}, nil
}

func (d *Draft) RequestID() rfp.RequestID { return d.requestID }
func (d *Draft) SellerID() int64          { return d.sellerID }
func (d *Draft) Amount() Amount           { return d.amount }
func (d *Draft) Message() *string         { return d.message.Ptr() }

// Bid is a stored offer. Bids are never updated or deleted.
type Bid struct {
	id        int64
	requestID rfp.RequestID
	sellerID  int64
	amount    decimal.Decimal
	message   *string
	createdAt time.Time
}

func Reconstruct(id int64, requestID rfp.RequestID, sellerID int64, amount decimal.Decimal, message *string, createdAt time.Time) *Bid {
	return &Bid{
		id:        id,
		requestID: requestID,
		sellerID:  sellerID,
		amount:    amount,
		message:   message,
		createdAt: createdAt,
	}
}

func (b *Bid) ID() int64                { return b.id }
func (b *Bid) RequestID() rfp.RequestID { return b.requestID }
func (b *Bid) SellerID() int64          { return b.sellerID }
func (b *Bid) Amount() decimal.Decimal  { return b.amount }
func (b *Bid) Message() *string         { return b.message }
func (b *Bid) CreatedAt() time.Time     { return b.createdAt }
