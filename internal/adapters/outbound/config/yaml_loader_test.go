package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/designqa/designqa/internal/adapters/outbound/config"
	"github.com/designqa/designqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".designqa.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
checks:
  spacing: false
rules:
  min_font_size: 14
  require_alt_text: false
default_background: "#FFFFFF"
min_score: 70
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.CheckConfiguration().Spacing)
	assert.True(t, cfg.CheckConfiguration().Contrast)
	assert.Equal(t, "#FFFFFF", cfg.DefaultBackground)
	assert.Equal(t, 70, cfg.MinScore)

	rules := cfg.Rules.Apply(domain.DefaultRules())
	assert.Equal(t, 14.0, rules.MinFontSize)
	assert.False(t, rules.RequireAltText)
	assert.Equal(t, 4.5, rules.MinContrastRatio)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .designqa.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
rules:
  min_font_size: -1
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .designqa.yaml")
	assert.Contains(t, err.Error(), "min_font_size")
}

func TestYAMLLoader_AllChecksDisabled(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
checks:
  contrast: false
  typography: false
  spacing: false
  alignment: false
  accessibility: false
`)
	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot disable all checks")
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestWrite_RoundTripsThroughLoad(t *testing.T) {
	dir := t.TempDir()
	off := false
	size := 14.0
	cfg := domain.ProjectConfig{
		Checks:   domain.ChecksConfig{Alignment: &off},
		Rules:    &domain.RuleOverrides{MinFontSize: &size},
		MinScore: 60,
	}

	path, err := appconfig.Write(dir, cfg, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".designqa.yaml"), path)

	loaded, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "min_score: 10\n")

	_, err := appconfig.Write(dir, domain.DefaultConfig(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = appconfig.Write(dir, domain.DefaultConfig(), true)
	require.NoError(t, err)
}
