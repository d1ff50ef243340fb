// Package advisor implements domain.SuggestionAugmenter with canned,
// rule-based commentary. It makes no network calls.
package advisor

import (
	"context"
	"fmt"

	"github.com/designqa/designqa/internal/domain"
)

// Source identifies annotations produced by this package.
const Source = "designqa-local"

var tips = map[domain.Category]string{
	domain.CategoryContrast:      "Ensure text meets WCAG 2.1 AA contrast (4.5:1 for body text, 3:1 for large text).",
	domain.CategoryTypography:    "Keep to a small set of font families and a readable type scale.",
	domain.CategorySpacing:       "Space elements on an 8px grid (8, 16, 24, ...) so the layout can breathe.",
	domain.CategoryAlignment:     "Use guides or auto-layout so elements in a row share a left edge.",
	domain.CategoryAccessibility: "Give every image a short description of what it shows.",
}

// Advisor builds a summary and one tip per failing category.
type Advisor struct{}

// New creates an Advisor.
func New() *Advisor { return &Advisor{} }

// Augment never modifies report.
func (a *Advisor) Augment(ctx context.Context, report *domain.Report) (*domain.Annotation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if report == nil {
		return nil, fmt.Errorf("augment: nil report")
	}

	ann := &domain.Annotation{
		Source:  Source,
		Summary: summary(report),
	}
	for _, c := range domain.Categories {
		if len(report.IssuesIn(c)) > 0 {
			ann.Suggestions = append(ann.Suggestions, tips[c])
		}
	}
	return ann, nil
}

func summary(r *domain.Report) string {
	if r.ElementCount == 0 {
		return "Nothing selected to review."
	}
	if r.TotalIssues == 0 {
		return fmt.Sprintf("Clean design: %d elements checked, no issues found.", r.ElementCount)
	}

	worst := r.Issues[0]
	for _, iss := range r.Issues[1:] {
		if iss.Severity.Rank() > worst.Severity.Rank() {
			worst = iss
		}
	}

	var verdict string
	switch r.Grade() {
	case "A+", "A":
		verdict = "Solid design with minor polish left"
	case "B", "C":
		verdict = "Reasonable design that needs a few fixes"
	default:
		verdict = "This design needs attention before it ships"
	}
	return fmt.Sprintf("%s (score %d, grade %s). %d issues; start with %q (%s).",
		verdict, r.OverallScore, r.Grade(), r.TotalIssues, worst.Title, worst.Severity)
}
