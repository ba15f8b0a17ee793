package api

import (
	"net/http"

	reqdto "syncro-backend/internal/handler/dto/request"
	resdto "syncro-backend/internal/handler/dto/response"
	"syncro-backend/internal/handler/httperr"
	"syncro-backend/internal/handler/middleware"
	"syncro-backend/internal/pkg/config"
	"syncro-backend/internal/pkg/cookie"
	"syncro-backend/internal/pkg/jwt"
	"syncro-backend/internal/usecase/commands"
	"syncro-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cfg:          cfg,
	}
}

// @Summary Register
// @Description Create an account. The active role starts as client.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithMappedError(c, err, "Registration failed")
		return
	}

	h.setTokenCookie(c, result.AccessToken)
	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		abortWithMappedError(c, err, "Login failed")
		return
	}

	h.setTokenCookie(c, result.AccessToken)
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Toggle active role
// @Description Switch between client and seller. Returns a new token carrying the new role.
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/toggle-role [post]
func (h *AuthHandler) ToggleRole(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}

	result, err := h.authCommands.ToggleRole(c.Request.Context(), identity)
	if err != nil {
		abortWithMappedError(c, err, "Role switch failed")
		return
	}

	h.setTokenCookie(c, result.AccessToken)
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary User logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	user, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithMappedError(c, err, "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	cookie.SetAccessTokenCookie(c, h.cfg.Cookie, token, h.jwtService.TokenDuration())
}
