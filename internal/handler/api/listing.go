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

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary Create listing
// @Description Publish a service listing. Requires the seller role.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), identity, req.ToDomain())
	if err != nil {
		abortWithMappedError(c, err, "Create listing failed")
		return
	}
	h.respondWith(c, http.StatusCreated, id)
}

// @Summary List listings
// @Tags listings
// @Produce json
// @Param category_id query int false "Category filter"
// @Param seller_id query int false "Seller filter"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ListingListResponse
// @Failure 400 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	var query reqdto.ListListingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, next, err := h.q.List(c.Request.Context(), query.Filter(), query.Cursor(), query.Limit)
	if err != nil {
		abortWithMappedError(c, err, "Failed to list listings")
		return
	}
	res, err := resdto.FromListingPage(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render listings", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWith(c, http.StatusOK, id)
}

// @Summary Update listing
// @Description Partial update. Owner only.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Fields to change"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [patch]
func (h *ListingHandler) Update(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err, "Failed to load listing")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), identity, id, req.ToDomain(existing)); err != nil {
		abortWithMappedError(c, err, "Update listing failed")
		return
	}
	h.respondWith(c, http.StatusOK, id)
}

func (h *ListingHandler) respondWith(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err, "Failed to load listing")
		return
	}
	res, err := resdto.FromListingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render listing", nil)
		return
	}
	c.JSON(status, res)
}
