package queries

import (
	"context"
	"time"

	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/errs"
)

var ErrListingNotFound = errs.New("listing not found")

// ListingFilter narrows the catalogue. Nil fields do not filter.
type ListingFilter struct {
	CategoryID *int64
	SellerID   *int64
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id int64) (*ListingView, error)
	FindPage(ctx context.Context, filter ListingFilter, after *Keyset, limit int32) ([]*ListingView, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id int64) (*ListingView, error)
	List(ctx context.Context, filter ListingFilter, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error)
}

type listingQueriesImpl struct {
	readStore ListingReadStore
}

func NewListingQueries(readStore ListingReadStore) ListingQueries {
	return &listingQueriesImpl{readStore: readStore}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id int64) (*ListingView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *listingQueriesImpl) List(ctx context.Context, filter ListingFilter, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error) {
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.FindPage(ctx, filter, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(v *ListingView) (time.Time, int64) { return v.CreatedAt, v.ID })
	return page, next, nil
}
