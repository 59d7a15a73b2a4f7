package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omada-tools/omada-mcp/pkg/api/types"
	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// ClientsHandler handles connected-client inventory endpoints
type ClientsHandler struct {
	inventory omada.Inventory
}

// NewClientsHandler creates a new clients handler
func NewClientsHandler(inventory omada.Inventory) *ClientsHandler {
	return &ClientsHandler{inventory: inventory}
}

// ListClients handles GET /sites/:siteId/clients
// @Summary      List clients in a site
// @Description  Returns all clients currently connected to a site, wired and wireless
// @Tags         clients
// @Produce      json
// @Param        siteId  path      string  true  "Site ID"
// @Success      200     {object}  types.ListClientsResponse
// @Failure      502     {object}  types.ErrorResponse  "Controller error"
// @Failure      504     {object}  types.ErrorResponse  "Request timed out"
// @Router       /sites/{siteId}/clients [get]
func (h *ClientsHandler) ListClients(c *gin.Context) {
	siteID := c.Param("siteId")
	ctx := c.Request.Context()

	clients, err := h.inventory.ListClients(ctx, siteID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListClientsResponse{
		SiteID:  siteID,
		Clients: clients,
		Count:   len(clients),
	})
}

// GetClient handles GET /sites/:siteId/clients/:id
// @Summary      Get client details
// @Description  Returns one client resolved by MAC address, IP address, or name
// @Tags         clients
// @Produce      json
// @Param        siteId  path      string  true  "Site ID"
// @Param        id      path      string  true  "Client MAC address, IP address, or name"
// @Success      200     {object}  types.ClientResponse
// @Failure      404     {object}  types.ErrorResponse  "Client not found"
// @Failure      502     {object}  types.ErrorResponse  "Controller error"
// @Failure      504     {object}  types.ErrorResponse  "Request timed out"
// @Router       /sites/{siteId}/clients/{id} [get]
func (h *ClientsHandler) GetClient(c *gin.Context) {
	siteID := c.Param("siteId")
	id := c.Param("id")
	ctx := c.Request.Context()

	cl, err := h.inventory.GetClient(ctx, siteID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ClientResponse{
		SiteID: siteID,
		Client: cl,
	})
}
