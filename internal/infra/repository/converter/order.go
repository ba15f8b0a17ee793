package converter

import (
	"syncro-backend/internal/domain/order"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		BuyerID:     o.BuyerID(),
		SellerID:    o.SellerID(),
		ListingID:   pgconv.Int64PtrToPgtype(o.ListingID()),
		ServiceName: o.ServiceName(),
		Amount:      pgconv.DecimalToNumeric(o.Amount()),
	}
}

func OrderFromRow(row sqlc.Orders) (*order.Order, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return order.Reconstruct(
		row.ID,
		row.BuyerID,
		row.SellerID,
		pgconv.Int64PtrFromPgtype(row.ListingID),
		row.ServiceName,
		amount,
		order.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
	), nil
}
