package scoring

import (
	"math"
	"testing"

	"github.com/designqa/designqa/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheckTypography_NonFiniteSizeNotEvaluated(t *testing.T) {
	elements := []domain.DesignElement{
		{ID: "a", Kind: domain.KindText, FontSize: math.NaN(), FontFamily: "Inter"},
		{ID: "b", Kind: domain.KindText, FontSize: math.Inf(1), FontFamily: "Inter"},
	}
	res := checkTypography(elements, domain.DefaultRules())
	assert.Empty(t, res.issues)
	// Only the family rule ran.
	assert.Equal(t, 1, res.evaluated)
}
