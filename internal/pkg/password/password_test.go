//go:build unit

package password_test

import (
	"strings"
	"testing"

	"syncro-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "password124"), password.ErrMismatch)
	assert.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrEmptyPassword)
	assert.Error(t, password.ComparePassword("not-a-bcrypt-hash", "password123"))
}

func TestHashPassword_Limits(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "empty", plain: "", wantErr: password.ErrEmptyPassword},
		{name: "exactly 72 bytes", plain: strings.Repeat("a", password.MaxBytes)},
		{name: "73 bytes", plain: strings.Repeat("a", password.MaxBytes+1), wantErr: password.ErrPasswordTooLong},
		// 25 three-byte runes: 25 characters but 75 bytes
		{name: "multibyte over the byte limit", plain: strings.Repeat("あ", 25), wantErr: password.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := password.HashPassword(tt.plain)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
