//go:build unit

package repository

import (
	"context"
	"testing"

	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/infra"
	sqlc "syncro-backend/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id int64) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateActiveRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateActiveRoleParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestCreate(t *testing.T) {
	email, err := user.NewEmail("  Taro@Example.com ")
	require.NoError(t, err)
	name, err := user.NewName("Taro", "Yamada")
	require.NoError(t, err)
	u := user.NewUser(email, "hashed", name)

	expectedParams := sqlc.CreateUserParams{
		Email:        "taro@example.com",
		PasswordHash: "hashed",
		FirstName:    "Taro",
		LastName:     "Yamada",
	}

	tests := []struct {
		name       string
		mockReturn sqlc.Users
		mockError  error
		wantID     int64
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			mockReturn: sqlc.Users{ID: 12},
			wantID:     12,
		},
		{
			name:      "duplicate email",
			mockError: &pgconn.PgError{Code: "23505"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, expectedParams).Return(tt.mockReturn, tt.mockError)

			repo := NewUserRepository(mockQueries)

			id, err := repo.Create(context.Background(), mockQueries, u)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUpdateLastLogin(t *testing.T) {
	tests := []struct {
		name      string
		userID    int64
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			userID:    5,
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			userID:    5,
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateLastLogin", mock.Anything, mock.Anything, tt.userID).Return(tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateLastLogin(context.Background(), mockQueries, tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUpdateActiveRole(t *testing.T) {
	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "inactive or missing user", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateActiveRole", mock.Anything, mock.Anything,
				sqlc.UpdateActiveRoleParams{ID: 9, ActiveRole: "seller"}).Return(tt.affected, tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateActiveRole(context.Background(), mockQueries, 9, user.RoleSeller)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
