package domain_test

import (
	"testing"

	"github.com/designqa/designqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestDefaultConfig_ChangesNothing(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Nil(t, cfg.Rules)
	assert.Empty(t, cfg.DefaultBackground)
	assert.Equal(t, domain.DefaultChecks(), cfg.CheckConfiguration())
	assert.NoError(t, cfg.Validate())
}

func TestProjectConfig_CheckConfiguration(t *testing.T) {
	cfg := domain.ProjectConfig{Checks: domain.ChecksConfig{Spacing: boolPtr(false), Contrast: boolPtr(true)}}
	cc := cfg.CheckConfiguration()
	assert.False(t, cc.Spacing)
	assert.True(t, cc.Contrast)
	assert.True(t, cc.Alignment)
}

func TestValidate_AllChecksDisabled(t *testing.T) {
	off := boolPtr(false)
	cfg := domain.ProjectConfig{Checks: domain.ChecksConfig{
		Contrast: off, Typography: off, Spacing: off, Alignment: off, Accessibility: off,
	}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot disable all checks")
}

func TestValidate_MinScoreRange(t *testing.T) {
	assert.Error(t, domain.ProjectConfig{MinScore: 101}.Validate())
	assert.Error(t, domain.ProjectConfig{MinScore: -1}.Validate())
	assert.NoError(t, domain.ProjectConfig{MinScore: 80}.Validate())
}

func TestValidate_RuleOverrides(t *testing.T) {
	cfg := domain.ProjectConfig{Rules: &domain.RuleOverrides{MinFontSize: floatPtr(0)}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_font_size")

	cfg = domain.ProjectConfig{Rules: &domain.RuleOverrides{MinFontSize: floatPtr(80)}}
	assert.Error(t, cfg.Validate())

	cfg = domain.ProjectConfig{Rules: &domain.RuleOverrides{MinSpacing: floatPtr(-1)}}
	assert.Error(t, cfg.Validate())

	cfg = domain.ProjectConfig{Rules: &domain.RuleOverrides{MaxFontFamilies: intPtr(2), MinSpacing: floatPtr(16)}}
	assert.NoError(t, cfg.Validate())
}

func TestRuleOverrides_Apply(t *testing.T) {
	o := &domain.RuleOverrides{
		MinContrastRatio: floatPtr(7),
		MaxFontFamilies:  intPtr(2),
		RequireAltText:   boolPtr(false),
	}
	r := o.Apply(domain.DefaultRules())
	assert.Equal(t, 7.0, r.MinContrastRatio)
	assert.Equal(t, 2, r.MaxFontFamilies)
	assert.False(t, r.RequireAltText)
	assert.Equal(t, 3.0, r.LargeTextContrastRatio)

	var none *domain.RuleOverrides
	assert.Equal(t, domain.DefaultRules(), none.Apply(domain.DefaultRules()))
}

func TestDefaultRules(t *testing.T) {
	r := domain.DefaultRules()
	assert.Equal(t, 4.5, r.MinContrastRatio)
	assert.Equal(t, 3.0, r.LargeTextContrastRatio)
	assert.Equal(t, 18.0, r.LargeTextSize)
	assert.Equal(t, 12.0, r.MinFontSize)
	assert.Equal(t, 60.0, r.MaxFontSize)
	assert.Equal(t, 3, r.MaxFontFamilies)
	assert.Equal(t, 8.0, r.MinSpacing)
	assert.Equal(t, 5.0, r.AlignmentTolerance)
	assert.True(t, r.RequireAltText)
	assert.NoError(t, r.Validate())
}
