package scoring

import (
	"fmt"

	"github.com/designqa/designqa/internal/domain"
)

// checkResult is what a single category check produces: how many
// evaluations ran, and the issues raised. Each evaluation raises at most one
// issue.
type checkResult struct {
	evaluated int
	issues    []domain.Issue
}

func (r *checkResult) add(iss domain.Issue) {
	r.issues = append(r.issues, iss)
}

// Analyze runs every enabled category over elements and aggregates the
// results into a report. It is a pure function: identical inputs always yield
// identical issues and score. Timestamp and timing are left for the caller.
//
// A nil or empty element list is valid and scores 100. Elements of an
// unrecognized kind are counted but only take part in kind-independent rules.
// The only failure is a contract violation (missing or duplicate element ids,
// or unusable rules), reported as domain.ErrInvalidInput.
func Analyze(elements []domain.DesignElement, checks domain.CheckConfiguration, rules domain.Rules) (*domain.Report, error) {
	if err := validateInput(elements, rules); err != nil {
		return nil, err
	}

	report := &domain.Report{
		Issues:       []domain.Issue{},
		ElementCount: len(elements),
	}
	ids := make(map[string]bool)

	for _, cat := range domain.Categories {
		cr := domain.CategoryResult{Category: cat, Enabled: checks.Enabled(cat)}
		if cr.Enabled {
			res := runCategory(cat, elements, rules)
			for _, iss := range res.issues {
				iss.ID = uniqueID(ids, iss.ID)
				report.Issues = append(report.Issues, iss)
			}
			cr.Evaluated = res.evaluated
			cr.Failed = len(res.issues)
			cr.Passed = res.evaluated - cr.Failed
		}
		report.Passed += cr.Passed
		report.Failed += cr.Failed
		report.Categories = append(report.Categories, cr)
	}

	report.TotalIssues = len(report.Issues)
	report.OverallScore = ComputeScore(report.Issues)
	return report, nil
}

func runCategory(cat domain.Category, elements []domain.DesignElement, rules domain.Rules) checkResult {
	switch cat {
	case domain.CategoryContrast:
		return checkContrast(elements, rules)
	case domain.CategoryTypography:
		return checkTypography(elements, rules)
	case domain.CategorySpacing:
		return checkSpacing(elements, rules)
	case domain.CategoryAlignment:
		return checkAlignment(elements, rules)
	case domain.CategoryAccessibility:
		return checkAccessibility(elements, rules)
	default:
		return checkResult{}
	}
}

func validateInput(elements []domain.DesignElement, rules domain.Rules) error {
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	seen := make(map[string]int, len(elements))
	for i, e := range elements {
		if e.ID == "" {
			return fmt.Errorf("%w: element %d has no id", domain.ErrInvalidInput, i)
		}
		if prev, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: elements %d and %d share id %q", domain.ErrInvalidInput, prev, i, e.ID)
		}
		seen[e.ID] = i
	}
	return nil
}

// uniqueID returns id, or id suffixed with -2, -3, ... if it was already used.
func uniqueID(seen map[string]bool, id string) string {
	if !seen[id] {
		seen[id] = true
		return id
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if !seen[candidate] {
			seen[candidate] = true
			return candidate
		}
	}
}

// boundsOf copies an element's box for issue highlighting. Nil when the
// element has no position.
func boundsOf(e domain.DesignElement) *domain.Bounds {
	if !e.HasPosition() {
		return nil
	}
	b := e.Bounds()
	return &b
}
