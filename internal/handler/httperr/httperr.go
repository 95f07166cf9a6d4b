package httperr

import (
	"net/http"

	"vinyl-storefront/internal/infra"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithGatewayError maps a backend failure onto the closest HTTP
// status. Handlers call this as the fallthrough after matching their
// usecase sentinels.
func AbortWithGatewayError(c *gin.Context, err error) {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case infra.IsKind(err, infra.KindConflict):
		AbortWithError(c, http.StatusConflict, err, "Conflicting state on the backend", nil)
	case infra.IsKind(err, infra.KindBadPayload):
		AbortWithError(c, http.StatusBadGateway, err, "Backend returned an unusable response", nil)
	case infra.IsKind(err, infra.KindUnavailable):
		AbortWithError(c, http.StatusBadGateway, err, "Backend is unreachable", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
