package api

import (
	"net/http"

	"syncro-backend/internal/domain/rfp"
	reqdto "syncro-backend/internal/handler/dto/request"
	resdto "syncro-backend/internal/handler/dto/response"
	"syncro-backend/internal/handler/httperr"
	"syncro-backend/internal/handler/middleware"
	"syncro-backend/internal/usecase/commands"
	"syncro-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Post a request
// @Description Post a request for proposals. Requires the client role.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRequestRequest true "Request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		abortWithMappedError(c, err, "Create request failed")
		return
	}
	h.respondWith(c, http.StatusCreated, id.Int64())
}

// @Summary List open requests
// @Description Open requests, newest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.RequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListOpen(c *gin.Context) {
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, next, err := h.q.ListOpen(c.Request.Context(), page.Cursor(), page.Limit)
	if err != nil {
		abortWithMappedError(c, err, "Failed to list requests")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestPage(items, next))
}

// @Summary Get request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWith(c, http.StatusOK, id)
}

// @Summary List bids
// @Description Bids on a request in the order they were placed
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {array} resdto.BidResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id}/bids [get]
func (h *RequestHandler) ListBids(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	bids, err := h.q.ListBids(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err, "Failed to list bids")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBidViews(bids))
}

// @Summary Cancel request
// @Description Close an open request without accepting a bid. Owner only.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.cmds.Cancel(c.Request.Context(), identity, rfp.RequestID(id)); err != nil {
		abortWithMappedError(c, err, "Cancel failed")
		return
	}
	h.respondWith(c, http.StatusOK, id)
}

// @Summary Accept a bid
// @Description Close the request with the given bid. Owner only.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body reqdto.AcceptBidRequest true "Bid to accept"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/accept [post]
func (h *RequestHandler) Accept(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AcceptBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.Accept(c.Request.Context(), identity, rfp.RequestID(id), req.BidID); err != nil {
		abortWithMappedError(c, err, "Accept failed")
		return
	}
	h.respondWith(c, http.StatusOK, id)
}

func (h *RequestHandler) respondWith(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err, "Failed to load request")
		return
	}
	c.JSON(status, resdto.FromRequestView(view))
}
