package scoring

import (
	"fmt"
	"math"

	"github.com/designqa/designqa/internal/domain"
)

// checkSpacing evaluates every unordered pair of elements with a known box.
// One issue per crowded pair, attributed to the earlier element.
func checkSpacing(elements []domain.DesignElement, rules domain.Rules) checkResult {
	var res checkResult
	var boxed []domain.DesignElement
	for _, e := range elements {
		if e.HasBox() {
			boxed = append(boxed, e)
		}
	}

	for i := 0; i < len(boxed); i++ {
		for j := i + 1; j < len(boxed); j++ {
			a, b := boxed[i], boxed[j]
			res.evaluated++
			gap := boxGap(a.Bounds(), b.Bounds())
			if gap >= rules.MinSpacing {
				continue
			}
			res.add(domain.Issue{
				ID:       fmt.Sprintf("spacing-%s-%s", a.ID, b.ID),
				Category: domain.CategorySpacing,
				Severity: domain.SeverityMedium,
				Title:    "Elements too close",
				Description: fmt.Sprintf("%s and %s are %s units apart, crowding the layout (minimum %s)",
					a.ID, b.ID, formatNumber(round2(gap)), formatNumber(rules.MinSpacing)),
				Suggestion:  fmt.Sprintf("Leave at least %s units between elements, ideally on an 8-unit grid", formatNumber(rules.MinSpacing)),
				ElementID:   a.ID,
				Coordinates: boundsOf(a),
			})
		}
	}
	return res
}

// boxGap is the shortest distance between two boxes, 0 when they touch or
// overlap.
func boxGap(a, b domain.Bounds) float64 {
	dx := max(0, b.X-a.Right(), a.X-b.Right())
	dy := max(0, b.Y-a.Bottom(), a.Y-b.Bottom())
	return math.Hypot(dx, dy)
}
