package api

import (
	"context"
	"net/http"

	"syncro-backend/internal/domain/user"
	reqdto "syncro-backend/internal/handler/dto/request"
	resdto "syncro-backend/internal/handler/dto/response"
	"syncro-backend/internal/handler/httperr"
	"syncro-backend/internal/handler/middleware"
	"syncro-backend/internal/usecase/commands"
	"syncro-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Order the service described by a listing
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.PlaceOrder(c.Request.Context(), identity, req.ListingID)
	if err != nil {
		abortWithMappedError(c, err, "Place order failed")
		return
	}
	h.respondWith(c, http.StatusCreated, id, identity.UserID)
}

// @Summary My orders
// @Description Orders where the caller is buyer or seller
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (max 200)"
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, err := h.q.ListMine(c.Request.Context(), userID, page.Limit)
	if err != nil {
		abortWithMappedError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(items))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWith(c, http.StatusOK, id, userID)
}

// @Summary Complete order
// @Description Seller marks a pending order completed
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/complete [post]
func (h *OrderHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.Complete, "Complete order failed")
}

// @Summary Cancel order
// @Description Either participant cancels a pending order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel, "Cancel order failed")
}

func (h *OrderHandler) transition(c *gin.Context, apply func(ctx context.Context, identity user.Identity, orderID int64) error, failMsg string) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), identity, id); err != nil {
		abortWithMappedError(c, err, failMsg)
		return
	}
	h.respondWith(c, http.StatusOK, id, identity.UserID)
}

func (h *OrderHandler) respondWith(c *gin.Context, status int, id, viewerID int64) {
	view, err := h.q.GetByID(c.Request.Context(), id, viewerID)
	if err != nil {
		abortWithMappedError(c, err, "Failed to load order")
		return
	}
	c.JSON(status, resdto.FromOrderView(view))
}
