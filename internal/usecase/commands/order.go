package commands

import (
	"context"

	"syncro-backend/internal/domain/order"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/clock"
	"syncro-backend/internal/pkg/errs"
	"syncro-backend/internal/usecase/shared"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderCommands interface {
	// PlaceOrder orders the service described by a listing. Seller, service
	// name, and amount are taken from the listing as it is now.
	PlaceOrder(ctx context.Context, identity user.Identity, listingID int64) (int64, error)
	Complete(ctx context.Context, identity user.Identity, orderID int64) error
	Cancel(ctx context.Context, identity user.Identity, orderID int64) error
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk}
}

func (c *orderCommandsImpl) PlaceOrder(ctx context.Context, identity user.Identity, listingID int64) (int64, error) {
	var id int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Reads().ListingByID(ctx, listingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return err
		}
		lid := l.ID()
		o, err := order.NewOrder(identity.UserID, l.SellerID(), &lid, l.Title(), l.Price())
		if err != nil {
			return err
		}
		id, err = tx.Orders().Create(ctx, tx.DB(), o)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (c *orderCommandsImpl) Complete(ctx context.Context, identity user.Identity, orderID int64) error {
	return c.transition(ctx, orderID, func(o *order.Order) error {
		return o.Complete(identity.UserID, c.clock.Now())
	})
}

func (c *orderCommandsImpl) Cancel(ctx context.Context, identity user.Identity, orderID int64) error {
	return c.transition(ctx, orderID, func(o *order.Order) error {
		return o.Cancel(identity.UserID)
	})
}

func (c *orderCommandsImpl) transition(ctx context.Context, orderID int64, apply func(*order.Order) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := apply(o); err != nil {
			return err
		}
		return tx.Orders().UpdateStatus(ctx, tx.DB(), o)
	})
}
