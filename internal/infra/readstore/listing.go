package readstore

import (
	"context"

	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
	"syncro-backend/internal/usecase/queries"
)

type ListingViewQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Listings, error)
	ListListings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingsParams) ([]sqlc.Listings, error)
}

type ListingReadStore struct {
	queries ListingViewQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingViewQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id int64) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get listing by id", err)
	}
	return toListingView(row)
}

func (r *ListingReadStore) FindPage(ctx context.Context, filter queries.ListingFilter, after *queries.Keyset, limit int32) ([]*queries.ListingView, error) {
	afterCreatedAt, afterID := keysetParams(after)
	rows, err := r.queries.ListListings(ctx, r.db, sqlc.ListListingsParams{
		CategoryID:     pgconv.Int64PtrToPgtype(filter.CategoryID),
		SellerID:       pgconv.Int64PtrToPgtype(filter.SellerID),
		AfterCreatedAt: afterCreatedAt,
		AfterID:        afterID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}

	result := make([]*queries.ListingView, 0, len(rows))
	for _, row := range rows {
		v, err := toListingView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func toListingView(row sqlc.Listings) (*queries.ListingView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid listing price", err, infra.KindDBFailure)
	}
	return &queries.ListingView{
		ID:           row.ID,
		SellerID:     row.SellerID,
		CategoryID:   row.CategoryID,
		Title:        row.Title,
		Description:  row.Description,
		Price:        price,
		DeliveryTime: pgconv.StringPtrFromPgtype(row.DeliveryTime),
		ImageURL:     pgconv.StringPtrFromPgtype(row.ImageUrl),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
