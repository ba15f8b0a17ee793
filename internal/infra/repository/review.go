package repository

import (
	"context"

	"syncro-backend/internal/domain/review"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/infra/repository/converter"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (int64, error) {
	row, err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	return row.ID, nil
}
