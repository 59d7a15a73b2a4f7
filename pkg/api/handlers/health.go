package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omada-tools/omada-mcp/pkg/api/types"
	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	inventory omada.Inventory
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(inventory omada.Inventory) *HealthHandler {
	return &HealthHandler{inventory: inventory}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health of the bridge and its controller session
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "Controller is unreachable"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	status := "healthy"
	httpStatus := http.StatusOK

	if err := h.inventory.Ping(ctx); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:     status,
		Controller: h.inventory.ControllerID(),
		Session:    h.inventory.SessionState(),
		Timestamp:  time.Now(),
	})
}
