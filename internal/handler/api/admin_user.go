package api

import (
	"errors"
	"net/http"
	"strconv"

	"vinyl-storefront/internal/domain/user"
	reqdto "vinyl-storefront/internal/handler/dto/request"
	resdto "vinyl-storefront/internal/handler/dto/response"
	"vinyl-storefront/internal/handler/httperr"
	"vinyl-storefront/internal/usecase/commands"
	"vinyl-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminUserHandler is the back-office account management surface.
type AdminUserHandler struct {
	commands *commands.UserCommands
	reads    *queries.UserQueries
}

func NewAdminUserHandler(userCommands *commands.UserCommands, userQueries *queries.UserQueries) *AdminUserHandler {
	return &AdminUserHandler{commands: userCommands, reads: userQueries}
}

func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.reads.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(users))
}

func (h *AdminUserHandler) Get(c *gin.Context) {
	id, err := h.userID(c)
	if err != nil {
		return
	}

	view, err := h.reads.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

func (h *AdminUserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateUserInput{
		Email:           req.Email,
		Password:        req.Password,
		Name:            req.Name,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Role:            req.Role,
		Status:          req.Status,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

func (h *AdminUserHandler) Update(c *gin.Context) {
	id, err := h.userID(c)
	if err != nil {
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, commands.UpdateUserInput{
		Email:           req.Email,
		Name:            req.Name,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Role:            req.Role,
		Status:          req.Status,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, err := h.userID(c)
	if err != nil {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminUserHandler) userID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return 0, err
	}
	return id, nil
}

func (h *AdminUserHandler) abort(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Email is already registered",
		})
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrInvalidStatus),
		errors.Is(err, user.ErrPasswordTooWeak):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		httperr.AbortWithGatewayError(c, err)
	}
}
