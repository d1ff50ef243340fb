package domain

import "fmt"

// ProjectConfig holds project-level configuration loaded from .designqa.yaml.
type ProjectConfig struct {
	Checks            ChecksConfig   `yaml:"checks"             json:"checks,omitempty"`
	Rules             *RuleOverrides `yaml:"rules,omitempty"    json:"rules,omitempty"`
	DefaultBackground string         `yaml:"default_background" json:"default_background,omitempty"`
	MinScore          int            `yaml:"min_score"          json:"min_score,omitempty"`
}

// ChecksConfig toggles categories. Pointer types distinguish "not specified"
// from false; unspecified categories stay enabled.
type ChecksConfig struct {
	Contrast      *bool `yaml:"contrast,omitempty"      json:"contrast,omitempty"`
	Typography    *bool `yaml:"typography,omitempty"    json:"typography,omitempty"`
	Spacing       *bool `yaml:"spacing,omitempty"       json:"spacing,omitempty"`
	Alignment     *bool `yaml:"alignment,omitempty"     json:"alignment,omitempty"`
	Accessibility *bool `yaml:"accessibility,omitempty" json:"accessibility,omitempty"`
}

// RuleOverrides allows users to override specific thresholds.
type RuleOverrides struct {
	MinContrastRatio       *float64 `yaml:"min_contrast_ratio,omitempty"        json:"min_contrast_ratio,omitempty"`
	LargeTextContrastRatio *float64 `yaml:"large_text_contrast_ratio,omitempty" json:"large_text_contrast_ratio,omitempty"`
	LargeTextSize          *float64 `yaml:"large_text_size,omitempty"           json:"large_text_size,omitempty"`
	MinFontSize            *float64 `yaml:"min_font_size,omitempty"             json:"min_font_size,omitempty"`
	MaxFontSize            *float64 `yaml:"max_font_size,omitempty"             json:"max_font_size,omitempty"`
	MaxFontFamilies        *int     `yaml:"max_font_families,omitempty"         json:"max_font_families,omitempty"`
	MinSpacing             *float64 `yaml:"min_spacing,omitempty"               json:"min_spacing,omitempty"`
	AlignmentTolerance     *float64 `yaml:"alignment_tolerance,omitempty"       json:"alignment_tolerance,omitempty"`
	RequireAltText         *bool    `yaml:"require_alt_text,omitempty"          json:"require_alt_text,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// CheckConfiguration resolves the toggles against the all-enabled default.
func (c ProjectConfig) CheckConfiguration() CheckConfiguration {
	cc := DefaultChecks()
	toggles := map[Category]*bool{
		CategoryContrast:      c.Checks.Contrast,
		CategoryTypography:    c.Checks.Typography,
		CategorySpacing:       c.Checks.Spacing,
		CategoryAlignment:     c.Checks.Alignment,
		CategoryAccessibility: c.Checks.Accessibility,
	}
	for cat, on := range toggles {
		if on != nil {
			cc = cc.With(cat, *on)
		}
	}
	return cc
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if len(c.CheckConfiguration().EnabledCategories()) == 0 {
		return fmt.Errorf("cannot disable all checks (must have at least one active)")
	}

	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score = %d (must be between 0 and 100)", c.MinScore)
	}

	if c.Rules != nil {
		if err := c.Rules.Apply(DefaultRules()).Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Apply overlays the overrides on base. Unset fields keep base values.
func (o *RuleOverrides) Apply(base Rules) Rules {
	if o == nil {
		return base
	}
	if o.MinContrastRatio != nil {
		base.MinContrastRatio = *o.MinContrastRatio
	}
	if o.LargeTextContrastRatio != nil {
		base.LargeTextContrastRatio = *o.LargeTextContrastRatio
	}
	if o.LargeTextSize != nil {
		base.LargeTextSize = *o.LargeTextSize
	}
	if o.MinFontSize != nil {
		base.MinFontSize = *o.MinFontSize
	}
	if o.MaxFontSize != nil {
		base.MaxFontSize = *o.MaxFontSize
	}
	if o.MaxFontFamilies != nil {
		base.MaxFontFamilies = *o.MaxFontFamilies
	}
	if o.MinSpacing != nil {
		base.MinSpacing = *o.MinSpacing
	}
	if o.AlignmentTolerance != nil {
		base.AlignmentTolerance = *o.AlignmentTolerance
	}
	if o.RequireAltText != nil {
		base.RequireAltText = *o.RequireAltText
	}
	return base
}
