package queries

import (
	"context"

	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/errs"
)

var ErrProfileNotFound = errs.New("profile not found")

type ProfileReadStore interface {
	FindByUserID(ctx context.Context, userID int64) (*ProfileView, error)
}

type ProfileQueries interface {
	GetByUserID(ctx context.Context, userID int64) (*ProfileView, error)
}

type profileQueriesImpl struct {
	readStore ProfileReadStore
}

func NewProfileQueries(readStore ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{readStore: readStore}
}

func (q *profileQueriesImpl) GetByUserID(ctx context.Context, userID int64) (*ProfileView, error) {
	v, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return v, nil
}
