package application

import (
	"strings"

	"github.com/designqa/designqa/internal/domain"
)

// ParseChecks turns a comma-separated category list ("contrast,spacing") into
// overrides that enable exactly those categories. An empty list returns nil,
// leaving the configured toggles alone.
func ParseChecks(list string) (*domain.AnalysisOptions, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var cats []domain.Category
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := domain.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	if len(cats) == 0 {
		return nil, nil
	}
	return domain.OptionsFor(domain.OnlyChecks(cats...)), nil
}
