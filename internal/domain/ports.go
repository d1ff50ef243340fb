package domain

import "context"

// Analyzer scores a batch of elements.
type Analyzer interface {
	Analyze(ctx context.Context, elements []DesignElement, checks CheckConfiguration) (*Report, error)
}

// SkippedRecord is a host record the collector could not turn into an element.
type SkippedRecord struct {
	Index int
	Err   error
}

// ElementCollector converts loosely-typed host records into elements.
type ElementCollector interface {
	Collect(raw []map[string]any) ([]DesignElement, []SkippedRecord)
}

// SelectionSource exposes the editor's current selection.
type SelectionSource interface {
	Snapshot() ([]DesignElement, uint64)
}

// ConfigLoader reads project configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (ProjectConfig, error)
}

// SuggestionAugmenter attaches free-text commentary to a finished report.
// Implementations must not modify the report.
type SuggestionAugmenter interface {
	Augment(ctx context.Context, report *Report) (*Annotation, error)
}

// GitInfo supplies version-control provenance for design documents.
type GitInfo interface {
	CommitHash(path string) (string, error)
}

// Document is a loaded design document: raw host records plus the analysis
// options stored alongside them.
type Document struct {
	Path     string
	Elements []map[string]any
	Options  *AnalysisOptions
}

// DocumentLoader reads design documents from disk.
type DocumentLoader interface {
	Load(path string) (*Document, error)
}

// AnalysisOptions is the wire form of per-request check toggles. Nil fields
// fall back to the configured default.
type AnalysisOptions struct {
	CheckContrast      *bool `json:"checkContrast,omitempty"      yaml:"checkContrast,omitempty"`
	CheckAlignment     *bool `json:"checkAlignment,omitempty"     yaml:"checkAlignment,omitempty"`
	CheckSpacing       *bool `json:"checkSpacing,omitempty"       yaml:"checkSpacing,omitempty"`
	CheckTypography    *bool `json:"checkTypography,omitempty"    yaml:"checkTypography,omitempty"`
	CheckAccessibility *bool `json:"checkAccessibility,omitempty" yaml:"checkAccessibility,omitempty"`
}

// Resolve overlays the options on base.
func (o *AnalysisOptions) Resolve(base CheckConfiguration) CheckConfiguration {
	if o == nil {
		return base
	}
	toggles := []struct {
		cat Category
		on  *bool
	}{
		{CategoryContrast, o.CheckContrast},
		{CategoryAlignment, o.CheckAlignment},
		{CategorySpacing, o.CheckSpacing},
		{CategoryTypography, o.CheckTypography},
		{CategoryAccessibility, o.CheckAccessibility},
	}
	for _, t := range toggles {
		if t.on != nil {
			base = base.With(t.cat, *t.on)
		}
	}
	return base
}

// OptionsFor is the inverse of Resolve: every toggle set explicitly.
func OptionsFor(cc CheckConfiguration) *AnalysisOptions {
	b := func(v bool) *bool { return &v }
	return &AnalysisOptions{
		CheckContrast:      b(cc.Contrast),
		CheckAlignment:     b(cc.Alignment),
		CheckSpacing:       b(cc.Spacing),
		CheckTypography:    b(cc.Typography),
		CheckAccessibility: b(cc.Accessibility),
	}
}
