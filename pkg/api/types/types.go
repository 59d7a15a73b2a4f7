package types

import (
	"time"

	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status     string    `json:"status"`
	Controller string    `json:"controller"`
	Session    string    `json:"session"`
	Timestamp  time.Time `json:"timestamp"`
}

// ListSitesResponse is returned from GET /sites
type ListSitesResponse struct {
	Sites []omada.Site `json:"sites"`
	Count int          `json:"count"`
}

// ListDevicesResponse is returned from GET /sites/{siteId}/devices
type ListDevicesResponse struct {
	SiteID  string         `json:"site_id"`
	Devices []omada.Device `json:"devices"`
	Count   int            `json:"count"`
}

// DeviceResponse is returned from GET /sites/{siteId}/devices/{id}
type DeviceResponse struct {
	SiteID string        `json:"site_id"`
	Device *omada.Device `json:"device"`
}

// ListClientsResponse is returned from GET /sites/{siteId}/clients
type ListClientsResponse struct {
	SiteID  string         `json:"site_id"`
	Clients []omada.Client `json:"clients"`
	Count   int            `json:"count"`
}

// ClientResponse is returned from GET /sites/{siteId}/clients/{id}
type ClientResponse struct {
	SiteID string        `json:"site_id"`
	Client *omada.Client `json:"client"`
}
