package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewQCServer creates a new MCP server with all dirchecker QC tools and
// resources registered. Paths passed to the tools are resolved relative
// to the server's working directory.
func NewQCServer() *server.MCPServer {
	s := server.NewMCPServer(
		"dirchecker",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s)
	registerResources(s)

	return s
}
