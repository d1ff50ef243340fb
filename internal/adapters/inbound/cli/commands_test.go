package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/designqa/designqa/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "designqa dev")
}

func TestDemo_Showcase(t *testing.T) {
	out, err := execute(t, "", "demo", "--json")
	require.NoError(t, err)
	assert.Equal(t, 60, decode(t, out).OverallScore)
}

func TestDemo_GeneratedIsDeterministic(t *testing.T) {
	a, err := execute(t, "", "demo", "--json", "--count", "9", "--seed", "7")
	require.NoError(t, err)
	b, err := execute(t, "", "demo", "--json", "--count", "9", "--seed", "7")
	require.NoError(t, err)

	ra, rb := decode(t, a), decode(t, b)
	assert.Equal(t, 9, ra.ElementCount)
	assert.Equal(t, ra.OverallScore, rb.OverallScore)
	assert.Equal(t, ra.Issues, rb.Issues)
}

func TestDemo_NegativeCount(t *testing.T) {
	_, err := execute(t, "", "demo", "--count", "-1")
	assert.Error(t, err)
}

func TestRules_JSON(t *testing.T) {
	out, err := execute(t, "", "rules", "--json", "--checks", "spacing")
	require.NoError(t, err)

	var payload struct {
		Checks map[string]bool `json:"checks"`
		Rules  map[string]any  `json:"rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.True(t, payload.Checks["spacing"])
	assert.False(t, payload.Checks["contrast"])
	assert.Equal(t, 4.5, payload.Rules["minContrastRatio"])
}

func TestRules_Terminal(t *testing.T) {
	out, err := execute(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "4.5:1")
	assert.Contains(t, out, "require alt text")
}

func TestInit_WritesLoadableConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "init", dir, "--min-score", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Created .designqa.yaml")

	data, err := os.ReadFile(filepath.Join(dir, ".designqa.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "min_score: 80")
	assert.Contains(t, string(data), "min_contrast_ratio: 4.5")

	var buf bytes.Buffer
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"rules", "--config-dir", dir})
	require.NoError(t, cmd.Execute())
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "init", dir)
	require.NoError(t, err)

	_, err = execute(t, "", "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "", "init", dir, "--force")
	assert.NoError(t, err)
}

func TestInit_RejectsBadMinScore(t *testing.T) {
	_, err := execute(t, "", "init", t.TempDir(), "--min-score", "150")
	assert.Error(t, err)
}

func TestServe_Help(t *testing.T) {
	out, err := execute(t, "", "serve", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--addr")
}
