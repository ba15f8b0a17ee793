package repository

import (
	"context"

	"syncro-backend/internal/domain/profile"
	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
	"syncro-backend/internal/pkg/pgconv"
)

type ProfileWriteQueries interface {
	UpsertProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertProfileParams) (sqlc.Profiles, error)
}

type ProfileRepository struct {
	queries ProfileWriteQueries
}

func NewProfileRepository(queries ProfileWriteQueries) *ProfileRepository {
	return &ProfileRepository{queries: queries}
}

func (r *ProfileRepository) Upsert(ctx context.Context, tx sqlc.DBTX, p *profile.Profile) error {
	_, err := r.queries.UpsertProfile(ctx, tx, sqlc.UpsertProfileParams{
		UserID:      p.UserID(),
		DisplayName: p.DisplayName(),
		Description: pgconv.StringPtrToPgtype(p.Description()),
		Address:     pgconv.StringPtrToPgtype(p.Address()),
		Phone:       pgconv.StringPtrToPgtype(p.Phone()),
		Website:     pgconv.StringPtrToPgtype(p.Website()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert profile", err)
	}
	return nil
}
