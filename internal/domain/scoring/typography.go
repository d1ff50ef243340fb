package scoring

import (
	"fmt"
	"strings"

	"github.com/designqa/designqa/internal/domain"
)

// checkTypography runs the size rule per text-bearing element with a known
// font size, and the family-diversity rule once over the whole set.
func checkTypography(elements []domain.DesignElement, rules domain.Rules) checkResult {
	var res checkResult
	var families []string
	seenFamily := make(map[string]bool)

	for _, e := range elements {
		if !e.IsTextBearing() {
			continue
		}

		if fam := strings.TrimSpace(e.FontFamily); fam != "" {
			key := strings.ToLower(fam)
			if !seenFamily[key] {
				seenFamily[key] = true
				families = append(families, fam)
			}
		}

		if !e.HasFontSize() {
			continue
		}
		res.evaluated++
		switch {
		case e.FontSize < rules.MinFontSize:
			res.add(domain.Issue{
				ID:          "typography-small-" + e.ID,
				Category:    domain.CategoryTypography,
				Severity:    domain.SeverityMedium,
				Title:       "Text too small",
				Description: fmt.Sprintf("Text size is %spx, too small to read comfortably", formatNumber(e.FontSize)),
				Suggestion:  fmt.Sprintf("Use at least %spx for body text", formatNumber(rules.MinFontSize)),
				ElementID:   e.ID,
				Coordinates: boundsOf(e),
			})
		case e.FontSize > rules.MaxFontSize:
			res.add(domain.Issue{
				ID:          "typography-large-" + e.ID,
				Category:    domain.CategoryTypography,
				Severity:    domain.SeverityLow,
				Title:       "Excessively large text",
				Description: fmt.Sprintf("Text size is %spx, above the %spx ceiling", formatNumber(e.FontSize), formatNumber(rules.MaxFontSize)),
				Suggestion:  "Reduce the size or reserve it for a single display heading",
				ElementID:   e.ID,
				Coordinates: boundsOf(e),
			})
		}
	}

	if len(families) == 0 {
		return res
	}
	res.evaluated++
	if excess := len(families) - rules.MaxFontFamilies; excess > 0 {
		res.add(domain.Issue{
			ID:       "typography-font-variety",
			Category: domain.CategoryTypography,
			Severity: domain.SeverityLow,
			Title:    "Too many font families",
			Description: fmt.Sprintf("%d font families in use (%d over the limit of %d): %s",
				len(families), excess, rules.MaxFontFamilies, strings.Join(families, ", ")),
			Suggestion: fmt.Sprintf("Limit the design to %d font families for visual consistency", rules.MaxFontFamilies),
		})
	}
	return res
}
