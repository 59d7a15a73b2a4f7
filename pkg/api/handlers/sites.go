package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omada-tools/omada-mcp/pkg/api/types"
	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// SitesHandler handles site inventory endpoints
type SitesHandler struct {
	inventory omada.Inventory
}

// NewSitesHandler creates a new sites handler
func NewSitesHandler(inventory omada.Inventory) *SitesHandler {
	return &SitesHandler{inventory: inventory}
}

// ListSites handles GET /sites
// @Summary      List all sites
// @Description  Returns every site the configured credentials can see
// @Tags         sites
// @Produce      json
// @Success      200  {object}  types.ListSitesResponse
// @Failure      502  {object}  types.ErrorResponse  "Controller error"
// @Failure      504  {object}  types.ErrorResponse  "Request timed out"
// @Router       /sites [get]
func (h *SitesHandler) ListSites(c *gin.Context) {
	ctx := c.Request.Context()

	sites, err := h.inventory.ListSites(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListSitesResponse{
		Sites: sites,
		Count: len(sites),
	})
}
