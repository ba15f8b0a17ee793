package readstore

import (
	"context"

	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
	"syncro-backend/internal/usecase/queries"
)

type ReviewViewQueries interface {
	GetReviewViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReviewViewByIDRow, error)
	ListReviewsByReviewee(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByRevieweeParams) ([]sqlc.ListReviewsByRevieweeRow, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id int64) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return toReviewView(sqlc.ListReviewsByRevieweeRow(row)), nil
}

func (r *ReviewReadStore) FindByRevieweePage(ctx context.Context, revieweeID int64, after *queries.Keyset, limit int32) ([]*queries.ReviewView, error) {
	afterCreatedAt, afterID := keysetParams(after)
	rows, err := r.queries.ListReviewsByReviewee(ctx, r.db, sqlc.ListReviewsByRevieweeParams{
		RevieweeID:     revieweeID,
		AfterCreatedAt: afterCreatedAt,
		AfterID:        afterID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by reviewee", err)
	}

	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(row)
	}
	return result, nil
}

func toReviewView(row sqlc.ListReviewsByRevieweeRow) *queries.ReviewView {
	return &queries.ReviewView{
		ID:                row.ID,
		OrderID:           row.OrderID,
		ReviewerID:        row.ReviewerID,
		ReviewerFirstName: row.ReviewerFirstName,
		RevieweeID:        row.RevieweeID,
		Rating:            int(row.Rating),
		Comment:           pgconv.StringPtrFromPgtype(row.Comment),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
