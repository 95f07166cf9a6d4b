package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "vinyl-storefront/internal/handler/dto/response"
	"vinyl-storefront/internal/handler/httperr"
	"vinyl-storefront/internal/handler/middleware"
	"vinyl-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves a shopper's own order history.
type OrderHandler struct {
	orders *queries.OrderQueries
}

func NewOrderHandler(orderQueries *queries.OrderQueries) *OrderHandler {
	return &OrderHandler{orders: orderQueries}
}

func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(orders))
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	detail, err := h.orders.Detail(c.Request.Context(), orderID, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Order belongs to another user",
			})
		default:
			httperr.AbortWithGatewayError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderDetailView(detail))
}
