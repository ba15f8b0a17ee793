package api

import (
	"net/http"

	reqdto "syncro-backend/internal/handler/dto/request"
	resdto "syncro-backend/internal/handler/dto/response"
	"syncro-backend/internal/handler/httperr"
	"syncro-backend/internal/handler/middleware"
	"syncro-backend/internal/usecase/commands"
	"syncro-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 404 {object} httperr.Response
// @Router /profiles/{user_id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	h.respondWith(c, http.StatusOK, userID)
}

// @Summary Update my profile
// @Description Create or replace the caller's public profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertProfileRequest true "Profile"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Router /profiles/me [put]
func (h *ProfileHandler) UpsertMine(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Upsert(c.Request.Context(), identity, req.ToInput()); err != nil {
		abortWithMappedError(c, err, "Update profile failed")
		return
	}
	h.respondWith(c, http.StatusOK, identity.UserID)
}

func (h *ProfileHandler) respondWith(c *gin.Context, status int, userID int64) {
	view, err := h.q.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		abortWithMappedError(c, err, "Failed to load profile")
		return
	}
	res, err := resdto.FromProfileView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render profile", nil)
		return
	}
	c.JSON(status, res)
}
