package commands

import (
	"context"

	"syncro-backend/internal/domain/profile"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/usecase/shared"
)

type UpsertProfileInput struct {
	DisplayName string
	Description *string
	Address     *string
	Phone       *string
	Website     *string
}

type ProfileCommands interface {
	Upsert(ctx context.Context, identity user.Identity, in UpsertProfileInput) error
}

type profileCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProfileCommands(uow shared.UnitOfWork) ProfileCommands {
	return &profileCommandsImpl{uow: uow}
}

func (c *profileCommandsImpl) Upsert(ctx context.Context, identity user.Identity, in UpsertProfileInput) error {
	p, err := profile.NewProfile(identity.UserID, in.DisplayName, in.Description, in.Address, in.Phone, in.Website)
	if err != nil {
		return err
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().Upsert(ctx, tx.DB(), p)
	})
}
