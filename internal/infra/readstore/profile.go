package readstore

import (
	"context"

	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
	"syncro-backend/internal/usecase/queries"
)

type ProfileViewQueries interface {
	GetProfileByUserID(ctx context.Context, db sqlc.DBTX, userID int64) (sqlc.Profiles, error)
}

type ProfileReadStore struct {
	queries ProfileViewQueries
	db      sqlc.DBTX
}

func NewProfileReadStore(queries ProfileViewQueries, db sqlc.DBTX) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileReadStore) FindByUserID(ctx context.Context, userID int64) (*queries.ProfileView, error) {
	row, err := r.queries.GetProfileByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get profile", err)
	}
	return &queries.ProfileView{
		UserID:      row.UserID,
		DisplayName: row.DisplayName,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		Address:     pgconv.StringPtrFromPgtype(row.Address),
		Phone:       pgconv.StringPtrFromPgtype(row.Phone),
		Website:     pgconv.StringPtrFromPgtype(row.Website),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
