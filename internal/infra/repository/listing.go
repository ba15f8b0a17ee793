package repository

import (
	"context"

	"syncro-backend/internal/domain/listing"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/infra/repository/converter"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (sqlc.Listings, error)
	UpdateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingParams) (int64, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
}

func NewListingRepository(queries ListingWriteQueries) *ListingRepository {
	return &ListingRepository{queries: queries}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (int64, error) {
	row, err := r.queries.CreateListing(ctx, tx, converter.ListingToCreateParams(l))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create listing", err)
	}
	return row.ID, nil
}

func (r *ListingRepository) Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	affected, err := r.queries.UpdateListing(ctx, tx, converter.ListingToUpdateParams(l))
	if err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}
