package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/designqa/designqa/internal/domain"
)

// FallbackAnalyzer prefers a remote analyzer and falls back to the local one
// on any remote failure other than cancellation.
type FallbackAnalyzer struct {
	remote domain.Analyzer
	local  domain.Analyzer
	logger *zap.Logger
}

func NewFallbackAnalyzer(remote, local domain.Analyzer, logger *zap.Logger) *FallbackAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackAnalyzer{remote: remote, local: local, logger: logger}
}

func (f *FallbackAnalyzer) Analyze(ctx context.Context, elements []domain.DesignElement, checks domain.CheckConfiguration) (*domain.Report, error) {
	if f.remote != nil {
		report, err := f.remote.Analyze(ctx, elements, checks)
		if err == nil {
			return report, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		f.logger.Warn("remote analysis failed, scoring locally", zap.Error(err))
	}
	return f.local.Analyze(ctx, elements, checks)
}
