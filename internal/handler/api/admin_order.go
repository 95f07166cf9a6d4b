package api

import (
	"errors"
	"net/http"
	"strconv"

	"vinyl-storefront/internal/domain/order"
	reqdto "vinyl-storefront/internal/handler/dto/request"
	resdto "vinyl-storefront/internal/handler/dto/response"
	"vinyl-storefront/internal/handler/httperr"
	"vinyl-storefront/internal/usecase/commands"
	"vinyl-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminOrderHandler is the back-office order surface: full listings and
// lifecycle transitions.
type AdminOrderHandler struct {
	commands *commands.OrderCommands
	reads    *queries.OrderQueries
}

func NewAdminOrderHandler(orderCommands *commands.OrderCommands, orderQueries *queries.OrderQueries) *AdminOrderHandler {
	return &AdminOrderHandler{commands: orderCommands, reads: orderQueries}
}

func (h *AdminOrderHandler) List(c *gin.Context) {
	orders, err := h.reads.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(orders))
}

func (h *AdminOrderHandler) Get(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	// Admins read any order; zero skips the ownership check.
	detail, err := h.reads.Detail(c.Request.Context(), orderID, 0)
	if err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderDetailView(detail))
}

func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown order status",
			})
		case errors.Is(err, order.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order cannot move to the requested status",
			})
		default:
			httperr.AbortWithGatewayError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
