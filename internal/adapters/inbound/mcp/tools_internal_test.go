package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designqa/designqa/internal/adapters/outbound/collector"
	"github.com/designqa/designqa/internal/application"
	"github.com/designqa/designqa/internal/domain"
)

func testService() *application.AnalyzeService {
	return application.NewAnalyzeService(domain.DefaultConfig(),
		collector.New(collector.Options{}), collector.NewFileLoader(), collector.NewSelection(), nil)
}

func call(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	var req mcplib.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text
}

func decodeReport(t *testing.T, res *mcplib.CallToolResult) domain.Report {
	t.Helper()
	require.False(t, res.IsError, resultText(t, res))
	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &report))
	return report
}

func TestHandleAnalyze(t *testing.T) {
	res := call(t, handleAnalyze(testService()), map[string]any{
		"elements": `[{"id":"t1","type":"text","properties":{"color":"#888888","backgroundColor":"#FFFFFF","fontSize":10}}]`,
	})
	report := decodeReport(t, res)
	assert.Equal(t, 80, report.OverallScore)
	assert.Equal(t, 2, report.TotalIssues)
}

func TestHandleAnalyze_ChecksFilter(t *testing.T) {
	res := call(t, handleAnalyze(testService()), map[string]any{
		"elements": `[{"id":"t1","type":"text","properties":{"color":"#888888","backgroundColor":"#FFFFFF","fontSize":10}}]`,
		"checks":   "typography",
	})
	report := decodeReport(t, res)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, domain.CategoryTypography, report.Issues[0].Category)
}

func TestHandleAnalyze_Errors(t *testing.T) {
	h := handleAnalyze(testService())

	assert.True(t, call(t, h, map[string]any{}).IsError)
	assert.True(t, call(t, h, map[string]any{"elements": `{"not":"a list"}`}).IsError)

	res := call(t, h, map[string]any{"elements": `[]`, "checks": "colour"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "unknown category")
}

func TestHandleAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"img","type":"image"}]`), 0644))

	report := decodeReport(t, call(t, handleAnalyzeFile(testService()), map[string]any{"path": path}))
	assert.Equal(t, 80, report.OverallScore)

	res := call(t, handleAnalyzeFile(testService()), map[string]any{"path": filepath.Join(t.TempDir(), "missing.json")})
	assert.True(t, res.IsError)
}

func TestHandleSample(t *testing.T) {
	report := decodeReport(t, call(t, handleSample(testService()), nil))
	assert.Equal(t, 60, report.OverallScore)
	assert.Equal(t, 3, report.ElementCount)
}

func TestHandleRules(t *testing.T) {
	res := call(t, handleRules(testService()), nil)
	require.False(t, res.IsError)

	var got rulesPayload
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, domain.DefaultRules(), got.Rules)
	assert.Equal(t, domain.DefaultChecks(), got.Checks)
}

func TestJSONResource(t *testing.T) {
	contents, err := jsonResource(rulesURI, rulesView(testService()))
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "designqa://rules", text.URI)
	assert.Contains(t, text.Text, "minContrastRatio")
}
