package domain

import "fmt"

// Rules carries every threshold the checks compare against.
// Built from defaults merged with project overrides.
type Rules struct {
	// Contrast
	MinContrastRatio       float64 `json:"minContrastRatio"`
	LargeTextContrastRatio float64 `json:"largeTextContrastRatio"`
	LargeTextSize          float64 `json:"largeTextSize"` // font size at or above which the large-text ratio applies

	// Typography
	MinFontSize     float64 `json:"minFontSize"`
	MaxFontSize     float64 `json:"maxFontSize"`
	MaxFontFamilies int     `json:"maxFontFamilies"`

	// Spacing
	MinSpacing float64 `json:"minSpacing"`

	// Alignment
	AlignmentTolerance float64 `json:"alignmentTolerance"`

	// Accessibility
	RequireAltText bool `json:"requireAltText"`
}

// DefaultRules returns the WCAG-derived baseline thresholds.
func DefaultRules() Rules {
	return Rules{
		MinContrastRatio:       4.5,
		LargeTextContrastRatio: 3.0,
		LargeTextSize:          18,
		MinFontSize:            12,
		MaxFontSize:            60,
		MaxFontFamilies:        3,
		MinSpacing:             8,
		AlignmentTolerance:     5,
		RequireAltText:         true,
	}
}

// Validate rejects thresholds the checks cannot work with.
func (r Rules) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"min_contrast_ratio", r.MinContrastRatio},
		{"large_text_contrast_ratio", r.LargeTextContrastRatio},
		{"large_text_size", r.LargeTextSize},
		{"min_font_size", r.MinFontSize},
		{"max_font_size", r.MaxFontSize},
		{"max_font_families", float64(r.MaxFontFamilies)},
	}
	for _, p := range positive {
		if !finite(p.value) || p.value <= 0 {
			return fmt.Errorf("rules.%s must be > 0 (got %g)", p.name, p.value)
		}
	}
	if !finite(r.MinSpacing) || !finite(r.AlignmentTolerance) {
		return fmt.Errorf("rules.min_spacing and rules.alignment_tolerance must be finite")
	}
	if r.MinSpacing < 0 {
		return fmt.Errorf("rules.min_spacing must be >= 0 (got %g)", r.MinSpacing)
	}
	if r.AlignmentTolerance < 0 {
		return fmt.Errorf("rules.alignment_tolerance must be >= 0 (got %g)", r.AlignmentTolerance)
	}
	if r.MinFontSize > r.MaxFontSize {
		return fmt.Errorf("rules.min_font_size (%g) exceeds rules.max_font_size (%g)", r.MinFontSize, r.MaxFontSize)
	}
	if r.MinContrastRatio > 21 || r.LargeTextContrastRatio > 21 {
		return fmt.Errorf("contrast ratios cannot exceed 21:1")
	}
	return nil
}
