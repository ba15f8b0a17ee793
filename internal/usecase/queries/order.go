package queries

import (
	"context"

	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order access denied")
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id, viewerID int64) (*OrderView, error)
	ListForUser(ctx context.Context, userID int64, limit int32) ([]*OrderView, error)
}

type OrderQueries interface {
	// GetByID is visible to the order's buyer and seller only.
	GetByID(ctx context.Context, id, viewerID int64) (*OrderView, error)
	ListMine(ctx context.Context, userID int64, limit int) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id, viewerID int64) (*OrderView, error) {
	v, err := q.readStore.FindByID(ctx, id, viewerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if v.BuyerID != viewerID && v.SellerID != viewerID {
		return nil, ErrOrderAccess
	}
	return v, nil
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, userID int64, limit int) ([]*OrderView, error) {
	return q.readStore.ListForUser(ctx, userID, int32(ValidateLimit(limit))) // #nosec G115 -- capped by ValidateLimit
}
