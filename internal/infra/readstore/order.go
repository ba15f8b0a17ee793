package readstore

import (
	"context"

	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
	"syncro-backend/internal/usecase/queries"
)

type OrderViewQueries interface {
	GetOrderViewByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOrderViewByIDParams) (sqlc.GetOrderViewByIDRow, error)
	ListOrdersForUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersForUserParams) ([]sqlc.ListOrdersForUserRow, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID computes has_review from the viewer's perspective.
func (r *OrderReadStore) FindByID(ctx context.Context, id, viewerID int64) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderViewByID(ctx, r.db, sqlc.GetOrderViewByIDParams{ViewerID: viewerID, ID: id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order view by id", err)
	}
	return toOrderView(sqlc.ListOrdersForUserRow(row))
}

func (r *OrderReadStore) ListForUser(ctx context.Context, userID int64, limit int32) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersForUser(ctx, r.db, sqlc.ListOrdersForUserParams{UserID: userID, RowLimit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders for user", err)
	}

	result := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		v, err := toOrderView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func toOrderView(row sqlc.ListOrdersForUserRow) (*queries.OrderView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid order amount", err, infra.KindDBFailure)
	}
	return &queries.OrderView{
		ID:          row.ID,
		BuyerID:     row.BuyerID,
		SellerID:    row.SellerID,
		ListingID:   pgconv.Int64PtrFromPgtype(row.ListingID),
		ServiceName: row.ServiceName,
		Amount:      amount,
		Status:      row.Status,
		HasReview:   row.HasReview,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		CompletedAt: pgconv.TimePtrFromPgtype(row.CompletedAt),
	}, nil
}
