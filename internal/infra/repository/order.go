package repository

import (
	"context"

	"syncro-backend/internal/domain/order"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/infra/repository/converter"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (sqlc.Orders, error)
	GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Orders, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error) {
	row, err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create order", err)
	}
	return row.ID, nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order", err)
	}
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert order row", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	affected, err := r.queries.UpdateOrderStatus(ctx, tx, sqlc.UpdateOrderStatusParams{
		ID:          o.ID(),
		Status:      string(o.Status()),
		CompletedAt: pgconv.TimePtrToPgtype(o.CompletedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
