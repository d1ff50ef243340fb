package sample_test

import (
	"testing"

	"github.com/designqa/designqa/internal/adapters/outbound/collector"
	"github.com/designqa/designqa/internal/adapters/outbound/sample"
	"github.com/designqa/designqa/internal/domain"
	"github.com/designqa/designqa/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaw_NormalizesToElements(t *testing.T) {
	elements, skipped := collector.NormalizeAll(sample.Raw(), collector.Options{})
	require.Empty(t, skipped)
	assert.Equal(t, sample.Elements(), elements)
}

func TestElements_ShowcaseReport(t *testing.T) {
	report, err := scoring.Analyze(sample.Elements(), domain.DefaultChecks(), domain.DefaultRules())
	require.NoError(t, err)

	ids := make([]string, 0, len(report.Issues))
	for _, iss := range report.Issues {
		ids = append(ids, iss.ID)
	}
	assert.Equal(t, []string{"contrast-text-2", "typography-small-text-2", "accessibility-alt-text-image-1"}, ids)
	assert.Equal(t, 60, report.OverallScore)
}

func TestGenerator_Deterministic(t *testing.T) {
	a := sample.NewGenerator(42).Generate(12)
	b := sample.NewGenerator(42).Generate(12)
	assert.Equal(t, a, b)
	assert.Len(t, a, 12)
}

func TestGenerator_ValidForEngine(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		elements := sample.NewGenerator(seed).Generate(9)
		_, err := scoring.Analyze(elements, domain.DefaultChecks(), domain.DefaultRules())
		require.NoError(t, err, "seed %d", seed)
	}
}

func TestGenerator_NonPositiveCount(t *testing.T) {
	assert.Empty(t, sample.NewGenerator(1).Generate(0))
	assert.Empty(t, sample.NewGenerator(1).Generate(-3))
}
