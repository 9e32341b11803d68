package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// NewReachdriftMCPServer creates a new MCP server with all reachdrift tools
// and resources registered. projectPath is the default root to scan.
func NewReachdriftMCPServer(projectPath string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"reachdrift",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, log)
	registerResources(s, projectPath)

	return s
}
