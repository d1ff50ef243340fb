package scoring

import (
	"math"
	"strconv"

	"github.com/designqa/designqa/internal/domain"
)

// ComputeScore starts at 100 and subtracts each issue's severity penalty
// (critical 20, high 15, medium 10, low 5), clamped to [0, 100].
func ComputeScore(issues []domain.Issue) int {
	score := 100
	for _, iss := range issues {
		score -= iss.Severity.Penalty()
	}
	return min(100, max(0, score))
}

// formatNumber prints 12 as "12" and 4.5 as "4.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
