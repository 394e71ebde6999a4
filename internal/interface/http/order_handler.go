package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/storefront-api/internal/application"
	"github.com/oksasatya/storefront-api/pkg/response"
	"github.com/oksasatya/storefront-api/pkg/validation"
)

type OrderHandler struct {
	Svc *application.OrderService
}

func NewOrderHandler(svc *application.OrderService) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

// Place POST /orders {user, products, total}
func (h *OrderHandler) Place(c *gin.Context) {
	var req application.PlaceOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, validation.BindError(err))
		return
	}
	o, err := h.Svc.Place(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// ListForUser GET /orders/:userId
func (h *OrderHandler) ListForUser(c *gin.Context) {
	orders, err := h.Svc.ListForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
