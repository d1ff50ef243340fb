package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/designqa/designqa/internal/adapters/outbound/sample"
	"github.com/designqa/designqa/internal/application"
	"github.com/designqa/designqa/internal/domain"
)

// registerTools registers all designqa MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.AnalyzeService) {
	// 1. designqa_analyze
	s.AddTool(
		mcplib.NewTool("designqa_analyze",
			mcplib.WithDescription("Score a list of design elements and return the quality report as JSON"),
			mcplib.WithString("elements",
				mcplib.Required(),
				mcplib.Description(`JSON array of elements, e.g. [{"id":"t1","type":"text","properties":{"color":"#888","fontSize":10}}]`),
			),
			mcplib.WithString("checks",
				mcplib.Description("Comma-separated categories to run (contrast, typography, spacing, alignment, accessibility). Defaults to all configured checks."),
			),
		),
		handleAnalyze(svc),
	)

	// 2. designqa_analyze_file
	s.AddTool(
		mcplib.NewTool("designqa_analyze_file",
			mcplib.WithDescription("Score a JSON or YAML design document on disk"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the design document"),
			),
			mcplib.WithString("checks",
				mcplib.Description("Comma-separated categories to run"),
			),
		),
		handleAnalyzeFile(svc),
	)

	// 3. designqa_sample
	s.AddTool(
		mcplib.NewTool("designqa_sample",
			mcplib.WithDescription("Score the built-in three-element sample design"),
		),
		handleSample(svc),
	)

	// 4. designqa_rules
	s.AddTool(
		mcplib.NewTool("designqa_rules",
			mcplib.WithDescription("Returns the enabled checks and the thresholds they use"),
		),
		handleRules(svc),
	)
}

func handleAnalyze(svc *application.AnalyzeService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		payload, err := request.RequireString("elements")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		overrides, err := application.ParseChecks(request.GetString("checks", ""))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var raw []map[string]any
		if err := json.Unmarshal([]byte(payload), &raw); err != nil {
			return errorResult(fmt.Sprintf("elements must be a JSON array of objects: %v", err)), nil
		}

		report, err := svc.AnalyzeRaw(ctx, raw, svc.Checks(overrides))
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleAnalyzeFile(svc *application.AnalyzeService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		overrides, err := application.ParseChecks(request.GetString("checks", ""))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.AnalyzeDocument(ctx, path, overrides)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSample(svc *application.AnalyzeService) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := sampleReport(ctx, svc)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRules(svc *application.AnalyzeService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(rulesView(svc))
	}
}

type rulesPayload struct {
	Checks domain.CheckConfiguration `json:"checks"`
	Rules  domain.Rules              `json:"rules"`
}

func rulesView(svc *application.AnalyzeService) rulesPayload {
	return rulesPayload{Checks: svc.Checks(), Rules: svc.Rules()}
}

func sampleReport(ctx context.Context, svc *application.AnalyzeService) (*domain.Report, error) {
	return svc.Analyze(ctx, sample.Elements(), svc.Checks())
}

// jsonResult marshals v as indented JSON into a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
