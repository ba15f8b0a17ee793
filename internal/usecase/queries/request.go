package queries

import (
	"context"
	"time"

	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/errs"
)

var ErrRequestNotFound = errs.New("request not found")

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	FindOpenPage(ctx context.Context, after *Keyset, limit int32) ([]*RequestView, error)
}

type BidReadStore interface {
	ListByRequest(ctx context.Context, requestID int64) ([]*BidView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, id int64) (*RequestView, error)
	// ListOpen returns open requests newest first.
	ListOpen(ctx context.Context, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error)
	// ListBids returns the request's bids oldest first, the same order bid_list uses.
	ListBids(ctx context.Context, requestID int64) ([]*BidView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	bids     BidReadStore
}

func NewRequestQueries(requests RequestReadStore, bids BidReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, bids: bids}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id int64) (*RequestView, error) {
	v, err := q.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *requestQueriesImpl) ListOpen(ctx context.Context, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.requests.FindOpenPage(ctx, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(v *RequestView) (time.Time, int64) { return v.CreatedAt, v.ID })
	return page, next, nil
}

func (q *requestQueriesImpl) ListBids(ctx context.Context, requestID int64) ([]*BidView, error) {
	if _, err := q.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return q.bids.ListByRequest(ctx, requestID)
}
