//go:build unit || e2e

package builder

import (
	"testing"

	"syncro-backend/internal/domain/auth"
	reqdto "syncro-backend/internal/handler/dto/request"

	"github.com/stretchr/testify/require"
)

type AuthBuilder struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Taro",
		LastName:  "Yamada",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:     a.Email,
		Password:  a.Password,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

func (a *AuthBuilder) BuildCredentials(t *testing.T) auth.Credentials {
	t.Helper()
	credentials, err := auth.NewCredentials(a.Email, a.Password)
	require.NoError(t, err)
	return credentials
}
