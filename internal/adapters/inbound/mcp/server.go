package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/designqa/designqa/internal/application"
)

// NewDesignQAMCPServer creates an MCP server exposing the analysis service as
// tools and resources.
func NewDesignQAMCPServer(svc *application.AnalyzeService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"designqa",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
