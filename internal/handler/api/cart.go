package api

import (
	"errors"
	"net/http"
	"strconv"

	"vinyl-storefront/internal/domain/cart"
	reqdto "vinyl-storefront/internal/handler/dto/request"
	resdto "vinyl-storefront/internal/handler/dto/response"
	"vinyl-storefront/internal/handler/httperr"
	"vinyl-storefront/internal/handler/middleware"
	"vinyl-storefront/internal/pkg/config"
	"vinyl-storefront/internal/usecase/commands"
	"vinyl-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the cart routes. They sit behind OptionalAuth: an
// anonymous shopper operates on the shared guest cart.
type CartHandler struct {
	commands *commands.CartCommands
	reads    *queries.CartQueries
	guestID  int64
}

func NewCartHandler(cartCommands *commands.CartCommands, cartQueries *queries.CartQueries, cfg config.Config) *CartHandler {
	return &CartHandler{
		commands: cartCommands,
		reads:    cartQueries,
		guestID:  cfg.Guest.UserID,
	}
}

func (h *CartHandler) identity(c *gin.Context) cart.Identity {
	if userID, ok := middleware.GetUserID(c); ok {
		return cart.Authenticated(userID)
	}
	return cart.Guest(h.guestID)
}

func (h *CartHandler) Get(c *gin.Context) {
	id := h.identity(c)

	cartView, err := h.commands.EnsureCart(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}

	summary, err := h.reads.Summary(c.Request.Context(), cartView)
	if err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartSummaryView(summary))
}

func (h *CartHandler) ChangeItem(c *gin.Context) {
	var req reqdto.ChangeCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	line, err := h.commands.AddOrUpdate(c.Request.Context(), h.identity(c), req.VinylID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrStockExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested quantity exceeds available stock",
			})
		default:
			httperr.AbortWithGatewayError(c, err)
		}
		return
	}

	if line == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartLineView(line))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	vinylID, err := strconv.ParseInt(c.Param("vinyl_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vinyl ID",
		})
		return
	}

	if err := h.commands.Remove(c.Request.Context(), h.identity(c), vinylID); err != nil {
		switch {
		case errors.Is(err, commands.ErrCartLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vinyl is not in the cart",
			})
		default:
			httperr.AbortWithGatewayError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.commands.Clear(c.Request.Context(), h.identity(c)); err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
