package application

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/designqa/designqa/internal/domain"
	"github.com/designqa/designqa/internal/domain/scoring"
)

// AnalyzeService orchestrates one analysis pass:
// collect → score (pure engine) → stamp timing → annotate.
type AnalyzeService struct {
	cfg       domain.ProjectConfig
	rules     domain.Rules
	collector domain.ElementCollector
	documents domain.DocumentLoader
	selection domain.SelectionSource
	augmenter domain.SuggestionAugmenter
	git       domain.GitInfo
	logger    *zap.Logger
	now       func() time.Time
}

// Option customizes an AnalyzeService.
type Option func(*AnalyzeService)

// WithAugmenter attaches commentary to every report.
func WithAugmenter(a domain.SuggestionAugmenter) Option {
	return func(s *AnalyzeService) { s.augmenter = a }
}

// WithGitInfo stamps document reports with the commit they were read at.
func WithGitInfo(g domain.GitInfo) Option {
	return func(s *AnalyzeService) { s.git = g }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *AnalyzeService) { s.now = now }
}

func NewAnalyzeService(
	cfg domain.ProjectConfig,
	collector domain.ElementCollector,
	documents domain.DocumentLoader,
	selection domain.SelectionSource,
	logger *zap.Logger,
	opts ...Option,
) *AnalyzeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AnalyzeService{
		cfg:       cfg,
		rules:     BuildRules(cfg),
		collector: collector,
		documents: documents,
		selection: selection,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules returns the thresholds every analysis runs with.
func (s *AnalyzeService) Rules() domain.Rules { return s.rules }

// Checks resolves the configured toggles with per-request overrides.
func (s *AnalyzeService) Checks(overrides ...*domain.AnalysisOptions) domain.CheckConfiguration {
	return ResolveChecks(s.cfg, overrides...)
}

// Analyze scores elements. Augmenter failures are logged and never fail the
// analysis.
func (s *AnalyzeService) Analyze(ctx context.Context, elements []domain.DesignElement, checks domain.CheckConfiguration) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	report, err := scoring.Analyze(elements, checks, s.rules)
	if err != nil {
		return nil, fmt.Errorf("analyzing design: %w", err)
	}
	report.Timestamp = start.UTC()
	report.AnalysisTimeMs = s.now().Sub(start).Milliseconds()

	if s.augmenter != nil {
		// The augmenter sees a copy so it cannot disturb the score or issues.
		view := *report
		view.Issues = slices.Clone(report.Issues)
		view.Categories = slices.Clone(report.Categories)
		ann, err := s.augmenter.Augment(ctx, &view)
		if err != nil {
			s.logger.Warn("suggestion augmenter failed", zap.Error(err))
		} else {
			report.Annotation = ann
		}
	}

	s.logger.Info("analysis complete",
		zap.Int("elements", report.ElementCount),
		zap.Int("score", report.OverallScore),
		zap.Int("issues", report.TotalIssues),
		zap.Strings("checks", categoryNames(checks.EnabledCategories())),
		zap.Int64("duration_ms", report.AnalysisTimeMs),
	)
	return report, nil
}

// AnalyzeRaw normalizes host records and scores them. Records the collector
// cannot read are logged and left out.
func (s *AnalyzeService) AnalyzeRaw(ctx context.Context, raw []map[string]any, checks domain.CheckConfiguration) (*domain.Report, error) {
	elements, skipped := s.collector.Collect(raw)
	for _, sk := range skipped {
		s.logger.Warn("skipping host record", zap.Int("index", sk.Index), zap.Error(sk.Err))
	}
	return s.Analyze(ctx, elements, checks)
}

// AnalyzeDocument loads a design document and scores it. The document's own
// analysisOptions apply first, then overrides.
func (s *AnalyzeService) AnalyzeDocument(ctx context.Context, path string, overrides *domain.AnalysisOptions) (*domain.Report, error) {
	doc, err := s.documents.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}

	report, err := s.AnalyzeRaw(ctx, doc.Elements, s.Checks(doc.Options, overrides))
	if err != nil {
		return nil, err
	}

	if s.git != nil {
		hash, err := s.git.CommitHash(path)
		if err != nil {
			s.logger.Debug("no commit hash for document", zap.String("path", path), zap.Error(err))
		} else {
			report.CommitHash = hash
		}
	}
	return report, nil
}

// AnalyzeSelection scores one snapshot of the current selection and returns
// the selection version it was taken at.
func (s *AnalyzeService) AnalyzeSelection(ctx context.Context, overrides *domain.AnalysisOptions) (*domain.Report, uint64, error) {
	elements, version := s.selection.Snapshot()
	report, err := s.Analyze(ctx, elements, s.Checks(overrides))
	if err != nil {
		return nil, version, err
	}
	return report, version, nil
}

// BuildRules merges the project's rule overrides onto the defaults.
func BuildRules(cfg domain.ProjectConfig) domain.Rules {
	return cfg.Rules.Apply(domain.DefaultRules())
}

// ResolveChecks starts from the project toggles and applies each set of
// overrides in order. Nil overrides are ignored.
func ResolveChecks(cfg domain.ProjectConfig, overrides ...*domain.AnalysisOptions) domain.CheckConfiguration {
	checks := cfg.CheckConfiguration()
	for _, o := range overrides {
		checks = o.Resolve(checks)
	}
	return checks
}

func categoryNames(cats []domain.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}
