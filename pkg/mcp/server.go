package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/omada-tools/omada-mcp/pkg/omada"
)

// Server wraps the MCP server with the Omada controller inventory tools
type Server struct {
	mcpServer *server.MCPServer
	inventory omada.Inventory
}

// NewServer creates a new MCP server exposing the controller inventory
func NewServer(inventory omada.Inventory) *Server {
	s := &Server{
		inventory: inventory,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"omada-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
