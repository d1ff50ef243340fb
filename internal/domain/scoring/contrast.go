package scoring

import (
	"fmt"

	"github.com/designqa/designqa/internal/domain"
)

// checkContrast evaluates every element that has both a foreground and a
// background color it can parse. Large text gets the relaxed ratio.
func checkContrast(elements []domain.DesignElement, rules domain.Rules) checkResult {
	var res checkResult
	for _, e := range elements {
		if e.Color == "" || e.BackgroundColor == "" {
			continue
		}
		fg, okFg := parseColor(e.Color)
		bg, okBg := parseColor(e.BackgroundColor)
		if !okFg || !okBg {
			continue
		}
		res.evaluated++

		required := requiredContrast(e, rules)
		ratio := contrastRatio(fg, bg)
		if ratio >= required {
			continue
		}

		res.add(domain.Issue{
			ID:       "contrast-" + e.ID,
			Category: domain.CategoryContrast,
			Severity: contrastSeverity(ratio, required),
			Title:    "Low color contrast",
			Description: fmt.Sprintf("%s on %s has a contrast ratio of %.2f:1, below the required %s:1",
				e.Color, e.BackgroundColor, ratio, formatNumber(required)),
			Suggestion:  fmt.Sprintf("Increase contrast to at least %s:1 with a darker foreground or a lighter background", formatNumber(required)),
			ElementID:   e.ID,
			Coordinates: boundsOf(e),
		})
	}
	return res
}

// requiredContrast picks the large-text ratio once the font size reaches the
// large-text size. Unknown font sizes get the stricter ratio.
func requiredContrast(e domain.DesignElement, rules domain.Rules) float64 {
	if e.HasFontSize() && e.FontSize >= rules.LargeTextSize {
		return rules.LargeTextContrastRatio
	}
	return rules.MinContrastRatio
}

// contrastSeverity is high below two thirds of the required ratio.
func contrastSeverity(ratio, required float64) domain.Severity {
	if ratio < required*2/3 {
		return domain.SeverityHigh
	}
	return domain.SeverityMedium
}
