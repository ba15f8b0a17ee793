package commands

import (
	"context"

	"syncro-backend/internal/domain/listing"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/errs"
	"syncro-backend/internal/usecase/shared"
)

var (
	ErrListingNotFound  = errs.New("listing not found")
	ErrCategoryNotFound = errs.New("category not found")
)

type ListingCommands interface {
	Create(ctx context.Context, identity user.Identity, content listing.Content) (int64, error)
	Update(ctx context.Context, identity user.Identity, id int64, content listing.Content) error
}

type listingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewListingCommands(uow shared.UnitOfWork) ListingCommands {
	return &listingCommandsImpl{uow: uow}
}

func (c *listingCommandsImpl) Create(ctx context.Context, identity user.Identity, content listing.Content) (int64, error) {
	if !identity.IsSeller() {
		return 0, ErrSellerRoleRequired
	}
	l, err := listing.NewListing(identity.UserID, content)
	if err != nil {
		return 0, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		id, cerr = tx.Listings().Create(ctx, tx.DB(), l)
		return cerr
	})
	if err != nil {
		return 0, mapCategoryErr(err)
	}
	return id, nil
}

func (c *listingCommandsImpl) Update(ctx context.Context, identity user.Identity, id int64, content listing.Content) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Reads().ListingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return err
		}
		if err := l.Update(identity.UserID, content); err != nil {
			return err
		}
		return tx.Listings().Update(ctx, tx.DB(), l)
	})
	return mapCategoryErr(err)
}

func mapCategoryErr(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return ErrCategoryNotFound
	}
	return err
}
