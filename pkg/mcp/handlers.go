package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omada-tools/omada-mcp/pkg/omada"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := GetHealthOutput{
		Status:     "healthy",
		Controller: s.inventory.ControllerID(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.inventory.Ping(ctx); err != nil {
		out.Status = "unhealthy"
		out.Error = err.Error()
	}
	out.Session = s.inventory.SessionState()

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListSites(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sites, err := s.inventory.ListSites(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list sites: %s", err)), nil
	}

	out := ListSitesOutput{
		Sites: sites,
		Count: len(sites),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	site, err := s.siteArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	devices, err := s.inventory.ListDevices(ctx, site)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list devices: %s", err)), nil
	}

	out := ListDevicesOutput{
		SiteID:  site,
		Devices: devices,
		Count:   len(devices),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListClients(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	site, err := s.siteArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	clients, err := s.inventory.ListClients(ctx, site)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list clients: %s", err)), nil
	}

	out := ListClientsOutput{
		SiteID:  site,
		Clients: clients,
		Count:   len(clients),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier, err := requiredString(request, "identifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	site, err := s.siteArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d, err := s.inventory.GetDevice(ctx, site, identifier)
	if omada.IsNotFound(err) {
		return mcp.NewToolResultText(formatJSON(notFound("device", identifier, site))), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get device: %s", err)), nil
	}

	out := GetDeviceOutput{
		SiteID: site,
		Device: d,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetClient(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier, err := requiredString(request, "identifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	site, err := s.siteArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	c, err := s.inventory.GetClient(ctx, site, identifier)
	if omada.IsNotFound(err) {
		return mcp.NewToolResultText(formatJSON(notFound("client", identifier, site))), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get client: %s", err)), nil
	}

	out := GetClientOutput{
		SiteID: site,
		Client: c,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleCallAPI(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	method, err := requiredString(request, "method")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	method = strings.ToUpper(method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported method %q, use GET/POST/PUT/PATCH/DELETE", method)), nil
	}

	path, err := requiredString(request, "path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path = s.expandPath(path)

	args := request.GetArguments()

	query := url.Values{}
	if params, ok := args["params"].(map[string]any); ok {
		for k, v := range params {
			query.Set(k, fmt.Sprint(v))
		}
	}

	var body any
	if b, ok := args["body"].(map[string]any); ok {
		body = b
	}

	result, err := s.inventory.Call(ctx, method, path, query, body)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("api call failed: %s", err)), nil
	}

	out := CallAPIOutput{
		Method: method,
		Path:   path,
		Result: result,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

// siteArg resolves the optional site_id argument, falling back to the
// configured default site.
func (s *Server) siteArg(request mcp.CallToolRequest) (string, error) {
	if v, ok := request.GetArguments()["site_id"]; ok {
		if str, ok := v.(string); ok && str != "" {
			return str, nil
		}
	}
	if site := s.inventory.DefaultSite(); site != "" {
		return site, nil
	}
	return "", fmt.Errorf("site_id is required when no default site is configured")
}

// expandPath substitutes {omadacId} and {siteId} placeholders so callers
// never need the raw controller identifier.
func (s *Server) expandPath(path string) string {
	path = strings.ReplaceAll(path, "{omadacId}", s.inventory.ControllerID())
	if site := s.inventory.DefaultSite(); site != "" {
		path = strings.ReplaceAll(path, "{siteId}", site)
	}
	return path
}

func notFound(kind, identifier, site string) NotFoundOutput {
	return NotFoundOutput{
		Found:      false,
		Kind:       kind,
		Identifier: identifier,
		SiteID:     site,
		Message:    fmt.Sprintf("no %s matches %q in site %q", kind, identifier, site),
	}
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := encodeJSON(v)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}

func encodeJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
