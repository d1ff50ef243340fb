package scoring

import (
	"strings"

	"github.com/designqa/designqa/internal/domain"
)

// checkAccessibility flags images whose alt text is absent or blank.
// Heading hierarchy is not inferred.
func checkAccessibility(elements []domain.DesignElement, rules domain.Rules) checkResult {
	var res checkResult
	if !rules.RequireAltText {
		return res
	}
	for _, e := range elements {
		if e.Kind != domain.KindImage {
			continue
		}
		res.evaluated++
		if e.AltText != nil && strings.TrimSpace(*e.AltText) != "" {
			continue
		}
		res.add(domain.Issue{
			ID:          "accessibility-alt-text-" + e.ID,
			Category:    domain.CategoryAccessibility,
			Severity:    domain.SeverityCritical,
			Title:       "Missing alt text",
			Description: "Image has no alternative text, so screen readers cannot describe it",
			Suggestion:  "Add a short description of what the image shows",
			ElementID:   e.ID,
			Coordinates: boundsOf(e),
		})
	}
	return res
}
