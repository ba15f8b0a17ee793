package repository

import (
	"context"

	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id int64) error
	UpdateActiveRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateActiveRoleParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error) {
	row, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return row.ID, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID int64) error {
	if err := r.queries.UpdateLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateActiveRole(ctx context.Context, tx sqlc.DBTX, userID int64, role user.Role) error {
	affected, err := r.queries.UpdateActiveRole(ctx, tx, sqlc.UpdateActiveRoleParams{
		ID:         userID,
		ActiveRole: role.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update active role", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
