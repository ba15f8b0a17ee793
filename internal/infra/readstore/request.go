package readstore

import (
	"context"

	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
	"syncro-backend/internal/usecase/queries"
)

type RequestViewQueries interface {
	GetRequestViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetRequestViewByIDRow, error)
	ListOpenRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOpenRequestsParams) ([]sqlc.ListOpenRequestsRow, error)
}

type RequestReadStore struct {
	queries RequestViewQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestViewQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	row, err := r.queries.GetRequestViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get request view by id", err)
	}
	return &queries.RequestView{
		ID:             row.ID,
		BuyerID:        row.BuyerID,
		BuyerFirstName: row.BuyerFirstName,
		Title:          row.Title,
		Description:    row.Description,
		Status:         row.Status,
		AcceptedBidID:  pgconv.Int64PtrFromPgtype(row.AcceptedBidID),
		BidCount:       row.BidCount,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		ClosedAt:       pgconv.TimePtrFromPgtype(row.ClosedAt),
	}, nil
}

func (r *RequestReadStore) FindOpenPage(ctx context.Context, after *queries.Keyset, limit int32) ([]*queries.RequestView, error) {
	afterCreatedAt, afterID := keysetParams(after)
	rows, err := r.queries.ListOpenRequests(ctx, r.db, sqlc.ListOpenRequestsParams{
		AfterCreatedAt: afterCreatedAt,
		AfterID:        afterID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open requests", err)
	}

	result := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RequestView{
			ID:             row.ID,
			BuyerID:        row.BuyerID,
			BuyerFirstName: row.BuyerFirstName,
			Title:          row.Title,
			Description:    row.Description,
			Status:         row.Status,
			AcceptedBidID:  pgconv.Int64PtrFromPgtype(row.AcceptedBidID),
			BidCount:       row.BidCount,
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
			ClosedAt:       pgconv.TimePtrFromPgtype(row.ClosedAt),
		}
	}
	return result, nil
}
