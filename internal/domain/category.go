package domain

import (
	"fmt"
	"strings"
)

// Category is one of the rule families the engine runs.
type Category string

const (
	CategoryContrast      Category = "contrast"
	CategoryTypography    Category = "typography"
	CategorySpacing       Category = "spacing"
	CategoryAlignment     Category = "alignment"
	CategoryAccessibility Category = "accessibility"
)

// Categories lists every category in evaluation order. Report issues follow
// this order.
var Categories = []Category{
	CategoryContrast,
	CategoryTypography,
	CategorySpacing,
	CategoryAlignment,
	CategoryAccessibility,
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: contrast, typography, spacing, alignment, accessibility)", name)
}

// Severity is an ordered issue severity.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities from 1 (low) to 4 (critical). Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Penalty is the number of points an issue of this severity costs.
func (s Severity) Penalty() int {
	switch s {
	case SeverityCritical:
		return 20
	case SeverityHigh:
		return 15
	case SeverityMedium:
		return 10
	case SeverityLow:
		return 5
	default:
		return 0
	}
}

// CheckConfiguration selects which categories run.
type CheckConfiguration struct {
	Contrast      bool `json:"contrast"`
	Alignment     bool `json:"alignment"`
	Spacing       bool `json:"spacing"`
	Typography    bool `json:"typography"`
	Accessibility bool `json:"accessibility"`
}

// DefaultChecks enables every category.
func DefaultChecks() CheckConfiguration {
	return CheckConfiguration{
		Contrast:      true,
		Alignment:     true,
		Spacing:       true,
		Typography:    true,
		Accessibility: true,
	}
}

// OnlyChecks enables exactly the given categories.
func OnlyChecks(cats ...Category) CheckConfiguration {
	var cc CheckConfiguration
	for _, c := range cats {
		cc = cc.With(c, true)
	}
	return cc
}

// Enabled reports whether the category runs.
func (cc CheckConfiguration) Enabled(c Category) bool {
	switch c {
	case CategoryContrast:
		return cc.Contrast
	case CategoryTypography:
		return cc.Typography
	case CategorySpacing:
		return cc.Spacing
	case CategoryAlignment:
		return cc.Alignment
	case CategoryAccessibility:
		return cc.Accessibility
	default:
		return false
	}
}

// With returns a copy with one category switched on or off.
func (cc CheckConfiguration) With(c Category, on bool) CheckConfiguration {
	switch c {
	case CategoryContrast:
		cc.Contrast = on
	case CategoryTypography:
		cc.Typography = on
	case CategorySpacing:
		cc.Spacing = on
	case CategoryAlignment:
		cc.Alignment = on
	case CategoryAccessibility:
		cc.Accessibility = on
	}
	return cc
}

// EnabledCategories returns the enabled categories in evaluation order.
func (cc CheckConfiguration) EnabledCategories() []Category {
	var out []Category
	for _, c := range Categories {
		if cc.Enabled(c) {
			out = append(out, c)
		}
	}
	return out
}
