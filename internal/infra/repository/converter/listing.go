package converter

import (
	"syncro-backend/internal/domain/listing"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	return sqlc.CreateListingParams{
		SellerID:     l.SellerID(),
		CategoryID:   l.CategoryID(),
		Title:        l.Title(),
		Description:  l.Description(),
		Price:        pgconv.DecimalToNumeric(l.Price()),
		DeliveryTime: pgconv.StringPtrToPgtype(l.DeliveryTime()),
	}
}

func ListingToUpdateParams(l *listing.Listing) sqlc.UpdateListingParams {
	return sqlc.UpdateListingParams{
		ID:           l.ID(),
		CategoryID:   l.CategoryID(),
		Title:        l.Title(),
		Description:  l.Description(),
		Price:        pgconv.DecimalToNumeric(l.Price()),
		DeliveryTime: pgconv.StringPtrToPgtype(l.DeliveryTime()),
	}
}

func ListingFromRow(row sqlc.Listings) (*listing.Listing, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return listing.Reconstruct(row.ID, row.SellerID, listing.Content{
		CategoryID:   row.CategoryID,
		Title:        row.Title,
		Description:  row.Description,
		Price:        price,
		DeliveryTime: pgconv.StringPtrFromPgtype(row.DeliveryTime),
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}
