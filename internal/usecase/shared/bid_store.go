package shared

import (
	"context"

	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/rfp"
)

// BidStore is the durable append-only log of bids.
//
// AppendBid fails with an infra.KindNotFound repository error when the request
// does not exist or no longer accepts bids. Appends for one request are
// serialized; the returned bid carries the store-assigned id and timestamp.
//
// ListBids returns bids ordered by timestamp, then id.
type BidStore interface {
	AppendBid(ctx context.Context, d *bid.Draft) (*bid.Bid, error)
	ListBids(ctx context.Context, requestID rfp.RequestID) ([]*bid.Bid, error)
}
