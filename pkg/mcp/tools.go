package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check connectivity to the Omada controller and the state of the API session"),
		),
		s.handleGetHealth,
	)

	// List sites
	s.mcpServer.AddTool(
		mcp.NewTool("list_sites",
			mcp.WithDescription("List all sites managed by the Omada controller"),
		),
		s.handleListSites,
	)

	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List all network devices (access points, switches, gateways) adopted by a site"),
			mcp.WithString("site_id",
				mcp.Description("Site ID to list devices for (defaults to the configured site)"),
			),
		),
		s.handleListDevices,
	)

	// List clients
	s.mcpServer.AddTool(
		mcp.NewTool("list_clients",
			mcp.WithDescription("List all clients currently connected to a site, wired and wireless"),
			mcp.WithString("site_id",
				mcp.Description("Site ID to list clients for (defaults to the configured site)"),
			),
		),
		s.handleListClients,
	)

	// Get device
	s.mcpServer.AddTool(
		mcp.NewTool("get_device",
			mcp.WithDescription("Get detailed information about a specific network device by MAC address or name"),
			mcp.WithString("identifier",
				mcp.Required(),
				mcp.Description("Device MAC address (any separator style) or device name"),
			),
			mcp.WithString("site_id",
				mcp.Description("Site ID the device belongs to (defaults to the configured site)"),
			),
		),
		s.handleGetDevice,
	)

	// Get client
	s.mcpServer.AddTool(
		mcp.NewTool("get_client",
			mcp.WithDescription("Get detailed information about a connected client by MAC address, IP address, or name"),
			mcp.WithString("identifier",
				mcp.Required(),
				mcp.Description("Client MAC address, IP address, or name"),
			),
			mcp.WithString("site_id",
				mcp.Description("Site ID the client is connected to (defaults to the configured site)"),
			),
		),
		s.handleGetClient,
	)

	// Raw API call
	s.mcpServer.AddTool(
		mcp.NewTool("call_api",
			mcp.WithDescription("Call an arbitrary Omada controller OpenAPI endpoint through the authenticated session. The path may use {omadacId} and {siteId} placeholders."),
			mcp.WithString("method",
				mcp.Required(),
				mcp.Description("HTTP method: GET, POST, PUT, PATCH or DELETE"),
			),
			mcp.WithString("path",
				mcp.Required(),
				mcp.Description("API path, e.g. /openapi/v1/{omadacId}/sites/{siteId}/devices"),
			),
			mcp.WithObject("params",
				mcp.Description("Query parameters as a flat object (e.g. {\"page\": \"1\"})"),
			),
			mcp.WithObject("body",
				mcp.Description("JSON request body for POST/PUT/PATCH calls"),
			),
		),
		s.handleCallAPI,
	)
}
