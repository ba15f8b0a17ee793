package commands

import (
	"context"

	domreview "syncro-backend/internal/domain/review"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/clock"
	"syncro-backend/internal/usecase/shared"
)

type CreateReviewInput struct {
	Rating  int
	Comment *string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, identity user.Identity, orderID int64, in CreateReviewInput) (int64, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

// CreateReview records the caller's review of the other participant of a completed order.
func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, identity user.Identity, orderID int64, in CreateReviewInput) (int64, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		rev, err := domreview.ForOrder(o, identity.UserID, in.Rating, in.Comment, uc.clock.Now())
		if err != nil {
			return err
		}

		createdID, err = tx.Reviews().Create(ctx, tx.DB(), rev)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return domreview.ErrReviewAlreadyExists
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}
