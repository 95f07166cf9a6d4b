package api

import (
	"errors"
	"net/http"
	"strconv"

	"vinyl-storefront/internal/domain/catalog"
	reqdto "vinyl-storefront/internal/handler/dto/request"
	resdto "vinyl-storefront/internal/handler/dto/response"
	"vinyl-storefront/internal/handler/httperr"
	"vinyl-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// AdminCatalogHandler is the back-office write surface for the catalog.
type AdminCatalogHandler struct {
	commands *commands.CatalogCommands
}

func NewAdminCatalogHandler(catalogCommands *commands.CatalogCommands) *AdminCatalogHandler {
	return &AdminCatalogHandler{commands: catalogCommands}
}

func (h *AdminCatalogHandler) Create(c *gin.Context) {
	var req reqdto.CreateVinylRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	vinyl, err := h.commands.Create(c.Request.Context(), commands.CreateVinylInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
		Images:   req.Images,
	})
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVinylView(vinyl))
}

func (h *AdminCatalogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vinyl ID",
		})
		return
	}

	var req reqdto.UpdateVinylRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	vinyl, err := h.commands.Update(c.Request.Context(), id, commands.UpdateVinylInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
	})
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVinylView(vinyl))
}

// UpdateWithImage takes a multipart form: scalar fields plus an "image"
// file that replaces the cover.
func (h *AdminCatalogHandler) UpdateWithImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vinyl ID",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file could not be read",
		})
		return
	}
	defer file.Close()

	fields := make(map[string]string)
	for _, name := range []string{"name", "category", "price", "stock"} {
		if value := c.PostForm(name); value != "" {
			fields[name] = value
		}
	}

	vinyl, err := h.commands.UpdateWithImage(c.Request.Context(), id, fields, fileHeader.Filename, file)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVinylView(vinyl))
}

func (h *AdminCatalogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vinyl ID",
		})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		h.abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminCatalogHandler) abort(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrEmptyName),
		errors.Is(err, catalog.ErrNegativePrice),
		errors.Is(err, catalog.ErrNegativeStock):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		httperr.AbortWithGatewayError(c, err)
	}
}
