//go:build unit

package api_test

import (
	"testing"

	"syncro-backend/internal/handler/middleware"
	"syncro-backend/internal/pkg/config"
	"syncro-backend/internal/pkg/jwt"
	"syncro-backend/internal/usecase"
	"syncro-backend/tests/common/authtest"

	"github.com/gin-gonic/gin"
)

// authFixture wires the real token validator so handlers see identities the way they do in production.
type authFixture struct {
	cfg        config.Config
	jwt        *authtest.JWTHelper
	service    *jwt.Service
	middleware *middleware.AuthMiddleware
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	helper := authtest.NewJWTHelper(cfg.JWT)
	service := helper.Service(t)
	return authFixture{
		cfg:        cfg,
		jwt:        helper,
		service:    service,
		middleware: middleware.NewAuthMiddleware(usecase.NewTokenValidator(service)),
	}
}
