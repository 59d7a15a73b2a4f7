package omada

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// Inventory is the controller surface the MCP and REST layers consume.
// Service implements it; tests substitute fakes.
type Inventory interface {
	// ListSites returns every site the credentials can see.
	ListSites(ctx context.Context) ([]Site, error)

	// ListDevices returns all devices adopted by a site.
	ListDevices(ctx context.Context, siteID string) ([]Device, error)

	// ListClients returns the clients currently known to a site.
	ListClients(ctx context.Context, siteID string) ([]Client, error)

	// GetDevice resolves one device by MAC address or name.
	GetDevice(ctx context.Context, siteID, identifier string) (*Device, error)

	// GetClient resolves one client by MAC address, IP, or name.
	GetClient(ctx context.Context, siteID, identifier string) (*Client, error)

	// Call executes an arbitrary controller API call through the pipeline.
	Call(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error)

	// Ping verifies the controller is reachable with valid credentials.
	Ping(ctx context.Context) error

	// SessionState reports the token lifecycle phase.
	SessionState() string

	// ControllerID returns the controller identifier in use.
	ControllerID() string

	// DefaultSite returns the configured default site id, if any.
	DefaultSite() string
}

var _ Inventory = (*Service)(nil)

func (s *Service) ListSites(ctx context.Context) ([]Site, error) {
	return fetchAll[Site](ctx, s, s.apiPath("sites"), nil)
}

func (s *Service) ListDevices(ctx context.Context, siteID string) ([]Device, error) {
	return fetchAll[Device](ctx, s, s.apiPath("sites", siteID, "devices"), nil)
}

func (s *Service) ListClients(ctx context.Context, siteID string) ([]Client, error) {
	return fetchAll[Client](ctx, s, s.apiPath("sites", siteID, "clients"), nil)
}

func (s *Service) GetDevice(ctx context.Context, siteID, identifier string) (*Device, error) {
	return findOne(ctx,
		func(ctx context.Context) ([]Device, error) { return s.ListDevices(ctx, siteID) },
		func(d *Device) bool {
			return macEqual(d.MAC, identifier) || strings.EqualFold(d.Name, identifier)
		})
}

func (s *Service) GetClient(ctx context.Context, siteID, identifier string) (*Client, error) {
	return findOne(ctx,
		func(ctx context.Context) ([]Client, error) { return s.ListClients(ctx, siteID) },
		func(c *Client) bool {
			return macEqual(c.MAC, identifier) || c.IP == identifier || strings.EqualFold(c.Name, identifier)
		})
}
