package api

import (
	"errors"
	"net/http"

	reqdto "vinyl-storefront/internal/handler/dto/request"
	resdto "vinyl-storefront/internal/handler/dto/response"
	"vinyl-storefront/internal/handler/middleware"
	"vinyl-storefront/internal/pkg/config"
	"vinyl-storefront/internal/pkg/cookie"
	"vinyl-storefront/internal/usecase/commands"
	"vinyl-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	commands *commands.AuthCommands
	users    *queries.UserQueries
	cfg      config.Config
}

func NewAuthHandler(authCommands *commands.AuthCommands, userQueries *queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands: authCommands,
		users:    userQueries,
		cfg:      cfg,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	user, pair, err := h.commands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrAccountInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.setSession(c, pair)
	c.JSON(http.StatusOK, resdto.LoginResponse{User: resdto.FromUserView(user)})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	user, pair, err := h.commands.Register(c.Request.Context(), commands.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		Name:            req.Name,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email is already registered",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid registration data",
			})
		}
		return
	}

	h.setSession(c, pair)
	c.JSON(http.StatusCreated, resdto.LoginResponse{User: resdto.FromUserView(user)})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Refresh token required",
		})
		return
	}

	pair, err := h.commands.Refresh(refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}

	h.setSession(c, pair)
	c.Status(http.StatusNoContent)
}

// Logout clears the session cookies. Tokens are stateless so nothing is
// revoked server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(user))
}

func (h *AuthHandler) setSession(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(
		c,
		h.cfg.Cookie,
		pair.AccessToken,
		pair.RefreshToken,
		h.cfg.JWT.AccessDuration,
		h.cfg.JWT.RefreshDuration,
	)
}
