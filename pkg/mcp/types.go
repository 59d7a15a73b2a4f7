package mcp

import (
	"encoding/json"

	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// --- Health Tool ---

// GetHealthInput is the input for the get_health tool
type GetHealthInput struct{}

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status     string `json:"status" jsonschema:"description=Overall health status (healthy or unhealthy)"`
	Controller string `json:"controller" jsonschema:"description=Omada controller identifier"`
	Session    string `json:"session" jsonschema:"description=API session state (unauthenticated/authenticated/expired)"`
	Error      string `json:"error,omitempty" jsonschema:"description=Failure detail when unhealthy"`
	Timestamp  string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// --- List Sites Tool ---

// ListSitesInput is the input for the list_sites tool
type ListSitesInput struct{}

// ListSitesOutput is the output for the list_sites tool
type ListSitesOutput struct {
	Sites []omada.Site `json:"sites" jsonschema:"description=Sites managed by the controller"`
	Count int          `json:"count" jsonschema:"description=Total number of sites"`
}

// --- List Devices Tool ---

// ListDevicesInput is the input for the list_devices tool
type ListDevicesInput struct {
	SiteID string `json:"site_id,omitempty" jsonschema:"description=Site ID to list devices for (defaults to the configured site)"`
}

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	SiteID  string         `json:"site_id" jsonschema:"description=Site the devices belong to"`
	Devices []omada.Device `json:"devices" jsonschema:"description=Devices adopted by the site"`
	Count   int            `json:"count" jsonschema:"description=Total number of devices"`
}

// --- List Clients Tool ---

// ListClientsInput is the input for the list_clients tool
type ListClientsInput struct {
	SiteID string `json:"site_id,omitempty" jsonschema:"description=Site ID to list clients for (defaults to the configured site)"`
}

// ListClientsOutput is the output for the list_clients tool
type ListClientsOutput struct {
	SiteID  string         `json:"site_id" jsonschema:"description=Site the clients are connected to"`
	Clients []omada.Client `json:"clients" jsonschema:"description=Clients currently connected to the site"`
	Count   int            `json:"count" jsonschema:"description=Total number of clients"`
}

// --- Get Device Tool ---

// GetDeviceInput is the input for the get_device tool
type GetDeviceInput struct {
	Identifier string `json:"identifier" jsonschema:"required,description=Device MAC address or name"`
	SiteID     string `json:"site_id,omitempty" jsonschema:"description=Site ID the device belongs to (defaults to the configured site)"`
}

// GetDeviceOutput is the output for the get_device tool
type GetDeviceOutput struct {
	SiteID string        `json:"site_id" jsonschema:"description=Site the device belongs to"`
	Device *omada.Device `json:"device" jsonschema:"description=Device information"`
}

// --- Get Client Tool ---

// GetClientInput is the input for the get_client tool
type GetClientInput struct {
	Identifier string `json:"identifier" jsonschema:"required,description=Client MAC address, IP address, or name"`
	SiteID     string `json:"site_id,omitempty" jsonschema:"description=Site ID the client is connected to (defaults to the configured site)"`
}

// GetClientOutput is the output for the get_client tool
type GetClientOutput struct {
	SiteID string        `json:"site_id" jsonschema:"description=Site the client is connected to"`
	Client *omada.Client `json:"client" jsonschema:"description=Client information"`
}

// --- Call API Tool ---

// CallAPIInput is the input for the call_api tool
type CallAPIInput struct {
	Method string         `json:"method" jsonschema:"required,description=HTTP method (GET/POST/PUT/PATCH/DELETE)"`
	Path   string         `json:"path" jsonschema:"required,description=API path, may contain {omadacId} and {siteId} placeholders"`
	Params map[string]any `json:"params,omitempty" jsonschema:"description=Query parameters"`
	Body   map[string]any `json:"body,omitempty" jsonschema:"description=JSON request body"`
}

// CallAPIOutput is the output for the call_api tool
type CallAPIOutput struct {
	Method string          `json:"method" jsonschema:"description=HTTP method that was sent"`
	Path   string          `json:"path" jsonschema:"description=Expanded API path that was called"`
	Result json.RawMessage `json:"result" jsonschema:"description=Raw result payload from the controller"`
}

// --- Shared ---

// NotFoundOutput is returned when a lookup completes but nothing matches
type NotFoundOutput struct {
	Found      bool   `json:"found" jsonschema:"description=Always false"`
	Kind       string `json:"kind" jsonschema:"description=What was looked up (device or client)"`
	Identifier string `json:"identifier" jsonschema:"description=Identifier that was searched for"`
	SiteID     string `json:"site_id" jsonschema:"description=Site that was searched"`
	Message    string `json:"message" jsonschema:"description=Human-readable summary"`
}
