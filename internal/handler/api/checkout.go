package api

import (
	"errors"
	"net/http"

	"vinyl-storefront/internal/domain/cart"
	resdto "vinyl-storefront/internal/handler/dto/response"
	"vinyl-storefront/internal/handler/httperr"
	"vinyl-storefront/internal/handler/middleware"
	"vinyl-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	commands *commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands *commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{commands: checkoutCommands}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required for checkout",
		})
		return
	}

	key, err := h.idempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	order, err := h.commands.CreateFromCartPaid(c.Request.Context(), cart.Authenticated(userID), key,
		commands.CheckoutOptions{ClearCart: true})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuthenticationRequired):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required for checkout",
			})
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrCheckoutInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Checkout request is currently being processed",
			})
		case errors.Is(err, commands.ErrOrderIncomplete):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Order could not be completed; contact support",
			})
		default:
			httperr.AbortWithGatewayError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(order))
}

func (h *CheckoutHandler) idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, errors.New("Idempotency-Key header is required")
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("Idempotency-Key must be a valid UUID")
	}
	return key, nil
}
