package api

import (
	"net/http"
	"strconv"

	resdto "vinyl-storefront/internal/handler/dto/response"
	"vinyl-storefront/internal/handler/httperr"
	"vinyl-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public catalog pages.
type CatalogHandler struct {
	vinyls *queries.VinylQueries
}

func NewCatalogHandler(vinylQueries *queries.VinylQueries) *CatalogHandler {
	return &CatalogHandler{vinyls: vinylQueries}
}

func (h *CatalogHandler) List(c *gin.Context) {
	vinyls, err := h.vinyls.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVinylViews(vinyls))
}

func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vinyl ID",
		})
		return
	}

	vinyl, err := h.vinyls.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVinylView(vinyl))
}
