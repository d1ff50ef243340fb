package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/designqa/designqa/internal/adapters/inbound/cli"
	"github.com/designqa/designqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "..", "..", "testdata", "designs", name)
}

// execute runs the root command against an empty config dir.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--config-dir", t.TempDir()))
	err := cmd.Execute()
	return out.String(), err
}

func decode(t *testing.T, out string) domain.Report {
	t.Helper()
	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	return report
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := execute(t, "", "analyze", fixture("showcase.json"), "--json")
	require.NoError(t, err)

	report := decode(t, out)
	assert.Equal(t, 60, report.OverallScore)
	assert.Equal(t, 3, report.TotalIssues)
	require.NotNil(t, report.Annotation)
	assert.Equal(t, "designqa-local", report.Annotation.Source)
}

func TestAnalyze_Terminal(t *testing.T) {
	out, err := execute(t, "", "analyze", fixture("showcase.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "Design Quality Score")
	assert.Contains(t, out, "Text too small")
}

func TestAnalyze_Stdin(t *testing.T) {
	data, err := os.ReadFile(fixture("clean.yaml"))
	require.NoError(t, err)

	out, err := execute(t, string(data), "analyze", "--json")
	require.NoError(t, err)
	assert.Equal(t, 100, decode(t, out).OverallScore)
}

func TestAnalyze_StdinGarbage(t *testing.T) {
	_, err := execute(t, "[1, 2", "analyze", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing stdin")
}

func TestAnalyze_ChecksFlag(t *testing.T) {
	out, err := execute(t, "", "analyze", fixture("showcase.json"), "--json", "--checks", "typography,contrast")
	require.NoError(t, err)

	report := decode(t, out)
	assert.Equal(t, 80, report.OverallScore)
	for _, iss := range report.Issues {
		assert.NotEqual(t, domain.CategoryAccessibility, iss.Category)
	}
}

func TestAnalyze_UnknownCheck(t *testing.T) {
	_, err := execute(t, "", "analyze", fixture("showcase.json"), "--checks", "kerning")
	assert.Error(t, err)
}

func TestAnalyze_Badge(t *testing.T) {
	out, err := execute(t, "", "analyze", fixture("showcase.json"), "--badge")
	require.NoError(t, err)
	assert.Equal(t, "https://img.shields.io/badge/designqa-60%2F100-"+domain.BadgeColor(60)+"\n", out)
}

func TestAnalyze_CIBelowMinimum(t *testing.T) {
	_, err := execute(t, "", "analyze", fixture("showcase.json"), "--ci", "--min", "70")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "score 60 is below minimum 70")
}

func TestAnalyze_CIUsesConfigMinimum(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".designqa.yaml"), []byte("min_score: 65\n"), 0644))

	var out bytes.Buffer
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"analyze", fixture("showcase.json"), "--ci", "--config-dir", dir})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum 65")
}

func TestAnalyze_RemoteFallsBackWhenUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out, err := execute(t, "", "analyze", fixture("showcase.json"), "--json", "--remote", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 60, decode(t, out).OverallScore)
}
