package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/designqa/designqa/internal/application"
	"github.com/designqa/designqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubAnalyzer struct {
	report *domain.Report
	err    error
	calls  int
}

func (s *stubAnalyzer) Analyze(context.Context, []domain.DesignElement, domain.CheckConfiguration) (*domain.Report, error) {
	s.calls++
	return s.report, s.err
}

func TestFallbackAnalyzer_RemoteSucceeds(t *testing.T) {
	remote := &stubAnalyzer{report: &domain.Report{OverallScore: 90}}
	local := &stubAnalyzer{report: &domain.Report{OverallScore: 10}}

	report, err := application.NewFallbackAnalyzer(remote, local, nil).Analyze(context.Background(), nil, domain.DefaultChecks())
	require.NoError(t, err)
	assert.Equal(t, 90, report.OverallScore)
	assert.Equal(t, 0, local.calls)
}

func TestFallbackAnalyzer_FallsBackAndLogs(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	remote := &stubAnalyzer{err: errors.New("connection refused")}
	local := &stubAnalyzer{report: &domain.Report{OverallScore: 70}}

	report, err := application.NewFallbackAnalyzer(remote, local, zap.New(core)).Analyze(context.Background(), nil, domain.DefaultChecks())
	require.NoError(t, err)
	assert.Equal(t, 70, report.OverallScore)
	assert.Equal(t, 1, logs.FilterMessage("remote analysis failed, scoring locally").Len())
}

func TestFallbackAnalyzer_NoRemote(t *testing.T) {
	local := &stubAnalyzer{report: &domain.Report{OverallScore: 50}}

	report, err := application.NewFallbackAnalyzer(nil, local, nil).Analyze(context.Background(), nil, domain.DefaultChecks())
	require.NoError(t, err)
	assert.Equal(t, 50, report.OverallScore)
}

func TestFallbackAnalyzer_CancelledDoesNotFallBack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	remote := &stubAnalyzer{err: context.Canceled}
	local := &stubAnalyzer{report: &domain.Report{}}

	_, err := application.NewFallbackAnalyzer(remote, local, nil).Analyze(ctx, nil, domain.DefaultChecks())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, local.calls)
}
