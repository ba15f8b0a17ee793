//go:build unit || e2e

package builder

import (
	"time"

	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/pkg/ptr"
	"syncro-backend/internal/usecase/commands"
	"syncro-backend/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type BidBuilder struct {
	ID        int64
	RequestID int64
	SellerID  int64
	Amount    float64
	Message   *string
	CreatedAt time.Time
}

func NewBidBuilder() *BidBuilder {
	return &BidBuilder{
		ID:        1,
		RequestID: 7,
		SellerID:  42,
		Amount:    1500.5,
		Message:   ptr.Of("Can deliver in three days"),
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (b *BidBuilder) With(mutate func(*BidBuilder)) *BidBuilder {
	mutate(b)
	return b
}

func (b *BidBuilder) BuildDraft() (*bid.Draft, error) {
	return bid.NewDraft(rfp.RequestID(b.RequestID), b.SellerID, b.Amount, b.Message)
}

func (b *BidBuilder) BuildDomain() *bid.Bid {
	return bid.Reconstruct(b.ID, rfp.RequestID(b.RequestID), b.SellerID, decimal.NewFromFloat(b.Amount), b.Message, b.CreatedAt)
}

func (b *BidBuilder) BuildInput() commands.SubmitBidInput {
	return commands.SubmitBidInput{
		RequestID: b.RequestID,
		SellerID:  b.SellerID,
		Amount:    ptr.Of(b.Amount),
		Message:   b.Message,
	}
}

func (b *BidBuilder) BuildView() *queries.BidView {
	return &queries.BidView{
		ID:        b.ID,
		RequestID: b.RequestID,
		SellerID:  b.SellerID,
		Amount:    decimal.NewFromFloat(b.Amount),
		Message:   b.Message,
		CreatedAt: b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BidBuilder) WithID(id int64) *BidBuilder {
	b.ID = id
	return b
}

func (b *BidBuilder) WithRequestID(id int64) *BidBuilder {
	b.RequestID = id
	return b
}

func (b *BidBuilder) WithSellerID(id int64) *BidBuilder {
	b.SellerID = id
	return b
}

func (b *BidBuilder) WithAmount(amount float64) *BidBuilder {
	b.Amount = amount
	return b
}

func (b *BidBuilder) WithoutMessage() *BidBuilder {
	b.Message = nil
	return b
}
