package domain

import (
	"math"
	"time"
)

// ElementKind identifies what sort of object a design element is.
type ElementKind string

const (
	KindText  ElementKind = "text"
	KindImage ElementKind = "image"
	KindShape ElementKind = "shape"
	KindGroup ElementKind = "group"
)

// Point is a position in design-space units.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size holds the width and height of an element.
type Size struct {
	Width  float64 `json:"width"  yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b Bounds) Right() float64  { return b.X + b.Width }
func (b Bounds) Bottom() float64 { return b.Y + b.Height }

// DesignElement is one inspected object on the canvas. Optional fields use
// their zero value (or nil) for "unknown".
type DesignElement struct {
	ID              string      `json:"id"`
	Kind            ElementKind `json:"kind"`
	Position        *Point      `json:"position,omitempty"`
	Dimensions      *Size       `json:"dimensions,omitempty"`
	Color           string      `json:"color,omitempty"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	FontSize        float64     `json:"fontSize,omitempty"`
	FontFamily      string      `json:"fontFamily,omitempty"`
	Text            string      `json:"text,omitempty"`
	AltText         *string     `json:"altText,omitempty"`
}

// HasFontSize reports whether a usable font size is known.
func (e DesignElement) HasFontSize() bool { return finite(e.FontSize) && e.FontSize > 0 }

// IsTextBearing reports whether the element carries text.
func (e DesignElement) IsTextBearing() bool { return e.Kind == KindText || e.Text != "" }

// HasPosition reports whether a finite position is known.
func (e DesignElement) HasPosition() bool {
	return e.Position != nil && finite(e.Position.X) && finite(e.Position.Y)
}

// HasBox reports whether both position and non-negative finite dimensions are
// known.
func (e DesignElement) HasBox() bool {
	return e.HasPosition() && e.Dimensions != nil &&
		finite(e.Dimensions.Width) && finite(e.Dimensions.Height) &&
		e.Dimensions.Width >= 0 && e.Dimensions.Height >= 0
}

// Bounds returns the element's bounding box. Unknown or non-finite dimensions
// count as zero. Callers must check HasPosition first.
func (e DesignElement) Bounds() Bounds {
	var b Bounds
	if e.Position != nil {
		b.X, b.Y = e.Position.X, e.Position.Y
	}
	if e.Dimensions != nil {
		if finite(e.Dimensions.Width) {
			b.Width = max(0, e.Dimensions.Width)
		}
		if finite(e.Dimensions.Height) {
			b.Height = max(0, e.Dimensions.Height)
		}
	}
	return b
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Issue is a single detected design-quality problem.
type Issue struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
	ElementID   string   `json:"elementId,omitempty"`
	Coordinates *Bounds  `json:"coordinates,omitempty"`
}

// CategoryResult is the per-category tally shown as one tab of the report.
type CategoryResult struct {
	Category  Category `json:"category"`
	Enabled   bool     `json:"enabled"`
	Evaluated int      `json:"evaluated"`
	Passed    int      `json:"passed"`
	Failed    int      `json:"failed"`
}

// Report is the output of one analysis pass.
type Report struct {
	OverallScore   int              `json:"overallScore"`
	TotalIssues    int              `json:"totalIssues"`
	Issues         []Issue          `json:"issues"`
	Passed         int              `json:"passed"`
	Failed         int              `json:"failed"`
	Categories     []CategoryResult `json:"categories"`
	ElementCount   int              `json:"elementCount"`
	AnalysisTimeMs int64            `json:"analysisTimeMs"`
	Timestamp      time.Time        `json:"timestamp"`
	CommitHash     string           `json:"commitHash,omitempty"`
	Annotation     *Annotation      `json:"annotation,omitempty"`
}

func (r Report) Grade() string { return GradeFor(r.OverallScore) }

// IssuesIn returns the report's issues for a single category, in report order.
func (r Report) IssuesIn(c Category) []Issue {
	var out []Issue
	for _, iss := range r.Issues {
		if iss.Category == c {
			out = append(out, iss)
		}
	}
	return out
}

// Annotation is free-text commentary attached to a report by a suggestion
// augmenter. It never affects the score or the issue list.
type Annotation struct {
	Source      string   `json:"source"`
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}
