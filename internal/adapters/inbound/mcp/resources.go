package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/designqa/designqa/internal/application"
)

const (
	rulesURI        = "designqa://rules"
	sampleReportURI = "designqa://sample-report"
)

// registerResources registers all designqa MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.AnalyzeService) {
	s.AddResource(
		mcplib.NewResource(
			rulesURI,
			"Rules",
			mcplib.WithResourceDescription("Enabled checks and effective thresholds"),
			mcplib.WithMIMEType("application/json"),
		),
		func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			return jsonResource(rulesURI, rulesView(svc))
		},
	)

	s.AddResource(
		mcplib.NewResource(
			sampleReportURI,
			"Sample Report",
			mcplib.WithResourceDescription("Quality report for the built-in sample design"),
			mcplib.WithMIMEType("application/json"),
		),
		func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			report, err := sampleReport(ctx, svc)
			if err != nil {
				return nil, fmt.Errorf("analysis failed: %w", err)
			}
			return jsonResource(sampleReportURI, report)
		},
	)
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
