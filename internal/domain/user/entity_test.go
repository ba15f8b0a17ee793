//go:build unit

package user_test

import (
	"strings"
	"testing"

	"syncro-backend/internal/domain/user"
	"syncro-backend/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Email{}, user.Name{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewName("Taro", "Yamada")
		expected := user.NewUser(email, "hashed_password", name)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.Zero(t, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, user.RoleClient, actual.Role())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("氏名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "姓名ありOK",
				mutate: func(b *builder.UserBuilder) { b.WithName("Hanako", "Sato") },
			},
			{
				name:   "名が空NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("  ", "Sato") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "姓が空NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("Hanako", "") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "最大長超過NG",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength+1), "Sato") },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("メールアドレス正規化", func(t *testing.T) {
		email, err := user.NewEmail("  Test@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", email.Value())
	})
}

func TestRole(t *testing.T) {
	t.Run("toggle switches between client and seller", func(t *testing.T) {
		assert.Equal(t, user.RoleSeller, user.RoleClient.Toggle())
		assert.Equal(t, user.RoleClient, user.RoleSeller.Toggle())
	})

	t.Run("parse", func(t *testing.T) {
		r, err := user.NewRole("seller")
		require.NoError(t, err)
		assert.Equal(t, user.RoleSeller, r)

		_, err = user.NewRole("admin")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("identity reports seller mode", func(t *testing.T) {
		assert.True(t, user.Identity{UserID: 1, Role: user.RoleSeller}.IsSeller())
		assert.False(t, user.Identity{UserID: 1, Role: user.RoleClient}.IsSeller())
	})
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword(strings.Repeat("a", user.MaxPasswordBytes+1))
	assert.ErrorIs(t, err, user.ErrPasswordTooLong)

	_, err = user.NewPassword(strings.Repeat("a", user.MaxPasswordBytes))
	assert.NoError(t, err)

	p, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
