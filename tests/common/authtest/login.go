//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"syncro-backend/internal/handler/dto/request"
	"syncro-backend/internal/pkg/cookie"
	"syncro-backend/tests/common/dbtest"
	"syncro-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// LoggedInUser is a fixture account together with a token carrying its active role.
type LoggedInUser struct {
	ID    int64
	Email string
	Token string
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) LoggedInUser {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return LoggedInUser{ID: id, Email: email, Token: LoginUser(t, router, email, dbtest.TestPassword)}
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
