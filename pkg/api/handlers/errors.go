package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omada-tools/omada-mcp/pkg/api/types"
	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// respondError maps pipeline errors to HTTP responses. Upstream failures
// are the controller's fault, not ours, so they surface as 502.
func respondError(c *gin.Context, err error) {
	var authErr *omada.AuthError
	var apiErr *omada.APIError
	var netErr *omada.NetworkError

	switch {
	case errors.Is(err, omada.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "No matching entity in this site",
		})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, types.ErrorResponse{
			Error:   "timeout",
			Message: "Request timed out waiting for controller response",
		})
	case errors.As(err, &authErr):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "auth_failed",
			Message: err.Error(),
		})
	case errors.As(err, &apiErr):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "controller_error",
			Message: err.Error(),
		})
	case errors.As(err, &netErr):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "controller_unreachable",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
