package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omada-tools/omada-mcp/pkg/api/types"
	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// DevicesHandler handles device inventory endpoints
type DevicesHandler struct {
	inventory omada.Inventory
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(inventory omada.Inventory) *DevicesHandler {
	return &DevicesHandler{inventory: inventory}
}

// ListDevices handles GET /sites/:siteId/devices
// @Summary      List devices in a site
// @Description  Returns all devices (access points, switches, gateways) adopted by a site
// @Tags         devices
// @Produce      json
// @Param        siteId  path      string  true  "Site ID"
// @Success      200     {object}  types.ListDevicesResponse
// @Failure      502     {object}  types.ErrorResponse  "Controller error"
// @Failure      504     {object}  types.ErrorResponse  "Request timed out"
// @Router       /sites/{siteId}/devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	siteID := c.Param("siteId")
	ctx := c.Request.Context()

	devices, err := h.inventory.ListDevices(ctx, siteID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		SiteID:  siteID,
		Devices: devices,
		Count:   len(devices),
	})
}

// GetDevice handles GET /sites/:siteId/devices/:id
// @Summary      Get device details
// @Description  Returns one device resolved by MAC address or name
// @Tags         devices
// @Produce      json
// @Param        siteId  path      string  true  "Site ID"
// @Param        id      path      string  true  "Device MAC address or name"
// @Success      200     {object}  types.DeviceResponse
// @Failure      404     {object}  types.ErrorResponse  "Device not found"
// @Failure      502     {object}  types.ErrorResponse  "Controller error"
// @Failure      504     {object}  types.ErrorResponse  "Request timed out"
// @Router       /sites/{siteId}/devices/{id} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	siteID := c.Param("siteId")
	id := c.Param("id")
	ctx := c.Request.Context()

	d, err := h.inventory.GetDevice(ctx, siteID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{
		SiteID: siteID,
		Device: d,
	})
}
