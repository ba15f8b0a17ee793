package queries

import (
	"context"
	"time"

	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/errs"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReviewView, error)
	FindByRevieweePage(ctx context.Context, revieweeID int64, after *Keyset, limit int32) ([]*ReviewView, error)
}

type ReviewQueries interface {
	GetReview(ctx context.Context, id int64) (*ReviewView, error)
	ListByReviewee(ctx context.Context, revieweeID int64, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) GetReview(ctx context.Context, id int64) (*ReviewView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *reviewQueriesImpl) ListByReviewee(ctx context.Context, revieweeID int64, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.FindByRevieweePage(ctx, revieweeID, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(v *ReviewView) (time.Time, int64) { return v.CreatedAt, v.ID })
	return page, next, nil
}
