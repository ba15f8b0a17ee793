package readstore

import (
	"context"

	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
	"syncro-backend/internal/usecase/queries"
)

type BidViewQueries interface {
	GetBidByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Bids, error)
	ListBidsByRequest(ctx context.Context, db sqlc.DBTX, requestID int64) ([]sqlc.Bids, error)
}

type BidReadStore struct {
	queries BidViewQueries
	db      sqlc.DBTX
}

func NewBidReadStore(queries BidViewQueries, db sqlc.DBTX) *BidReadStore {
	return &BidReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BidReadStore) FindByID(ctx context.Context, id int64) (*queries.BidView, error) {
	row, err := r.queries.GetBidByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bid by id", err)
	}
	return toBidView(row)
}

func (r *BidReadStore) ListByRequest(ctx context.Context, requestID int64) ([]*queries.BidView, error) {
	rows, err := r.queries.ListBidsByRequest(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids by request", err)
	}

	result := make([]*queries.BidView, 0, len(rows))
	for _, row := range rows {
		v, err := toBidView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func toBidView(row sqlc.Bids) (*queries.BidView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid bid amount", err, infra.KindDBFailure)
	}
	return &queries.BidView{
		ID:        row.ID,
		RequestID: row.RequestID,
		SellerID:  row.SellerID,
		Amount:    amount,
		Message:   pgconv.StringPtrFromPgtype(row.Message),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
