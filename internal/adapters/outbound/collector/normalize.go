// Package collector adapts loosely-typed host records into domain.DesignElement
// and owns the editor's current selection.
package collector

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/designqa/designqa/internal/domain"
)

// ErrUnrecognized is returned for host records that cannot become an element.
var ErrUnrecognized = errors.New("unrecognized element")

// Options tune normalization.
type Options struct {
	// DefaultBackground is applied to text elements without a background.
	// Empty leaves the background unknown.
	DefaultBackground string
}

// Skipped records a host record that was dropped during normalization.
type Skipped = domain.SkippedRecord

// Collector implements domain.ElementCollector with fixed Options.
type Collector struct {
	opts Options
}

// New creates a Collector.
func New(opts Options) *Collector { return &Collector{opts: opts} }

// Collect normalizes a batch; see NormalizeAll.
func (c *Collector) Collect(raw []map[string]any) ([]domain.DesignElement, []domain.SkippedRecord) {
	return NormalizeAll(raw, c.opts)
}

// field aliases, keyed by canonical key (see canonicalKey).
var aliases = map[string][]string{
	"id":         {"id", "elementid", "uid"},
	"kind":       {"type", "kind", "elementtype"},
	"x":          {"x", "left"},
	"y":          {"y", "top"},
	"width":      {"width", "w"},
	"height":     {"height", "h"},
	"color":      {"color", "textcolor", "fill", "fillcolor", "foreground", "foregroundcolor"},
	"background": {"backgroundcolor", "bgcolor", "background", "backgroundfill"},
	"fontsize":   {"fontsize", "size", "textsize"},
	"fontfamily": {"fontfamily", "font", "typeface", "fontname"},
	"text":       {"text", "content", "textcontent"},
	"alttext":    {"alttext", "alt", "alternativetext"},
	"position":   {"position", "pos", "origin"},
	"dimensions": {"dimensions", "dims", "box", "size"},
	"properties": {"properties", "props", "attributes"},
}

var kindAliases = map[string]domain.ElementKind{
	"text":      domain.KindText,
	"richtext":  domain.KindText,
	"textbox":   domain.KindText,
	"heading":   domain.KindText,
	"image":     domain.KindImage,
	"img":       domain.KindImage,
	"photo":     domain.KindImage,
	"picture":   domain.KindImage,
	"shape":     domain.KindShape,
	"rect":      domain.KindShape,
	"rectangle": domain.KindShape,
	"ellipse":   domain.KindShape,
	"line":      domain.KindShape,
	"path":      domain.KindShape,
	"group":     domain.KindGroup,
	"frame":     domain.KindGroup,
}

// record is a host object with keys folded to canonical form.
type record map[string]any

func newRecord(raw map[string]any) record {
	r := make(record, len(raw))
	for k, v := range raw {
		r[canonicalKey(k)] = v
	}
	return r
}

// lookup returns the first present alias of field.
func (r record) lookup(field string) (any, bool) {
	for _, alias := range aliases[field] {
		if v, ok := r[alias]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// hasKey reports whether any alias of field is present, even with a null value.
func hasKey(r record, field string) bool {
	for _, alias := range aliases[field] {
		if _, ok := r[alias]; ok {
			return true
		}
	}
	return false
}

// canonicalKey folds backgroundColor, background_color, Background-Color and
// BACKGROUND_COLOR to the same key.
func canonicalKey(k string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(k, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	}) {
		for _, word := range camelcase.Split(part) {
			b.WriteString(strings.ToLower(word))
		}
	}
	return b.String()
}

// Normalize converts one host record into a DesignElement. Properties may sit
// at the top level or under a nested properties object, with nested
// position/dimensions objects or flat x/y/width/height. Values it cannot read
// are left unknown. The returned element may lack an ID; NormalizeAll
// assigns one.
func Normalize(raw map[string]any, opts Options) (domain.DesignElement, error) {
	if raw == nil {
		return domain.DesignElement{}, fmt.Errorf("%w: empty record", ErrUnrecognized)
	}
	top := newRecord(raw)
	props := top
	if nested, ok := top.lookup("properties"); ok {
		if m, ok := asMap(nested); ok {
			props = newRecord(m)
		}
	}
	// Properties win; identity falls back to the top level.
	get := func(field string) (any, bool) {
		if v, ok := props.lookup(field); ok {
			return v, true
		}
		return top.lookup(field)
	}

	var e domain.DesignElement
	if v, ok := get("id"); ok {
		e.ID = asString(v)
	}

	e.Color = stringField(get, "color")
	e.BackgroundColor = stringField(get, "background")
	e.FontFamily = stringField(get, "fontfamily")
	e.Text = stringField(get, "text")
	if v, ok := get("fontsize"); ok {
		if f, ok := asFloat(v); ok && f > 0 {
			e.FontSize = f
		}
	}
	if v, ok := get("alttext"); ok {
		alt := asString(v)
		e.AltText = &alt
	} else if hasKey(props, "alttext") || hasKey(top, "alttext") {
		// An explicit null alt text is still "present but empty".
		empty := ""
		e.AltText = &empty
	}

	e.Position = readPoint(get)
	e.Dimensions = readSize(get)

	kind, err := readKind(get, e)
	if err != nil {
		return domain.DesignElement{}, err
	}
	e.Kind = kind

	if e.Kind == domain.KindText && e.BackgroundColor == "" {
		e.BackgroundColor = opts.DefaultBackground
	}
	return e, nil
}

// NormalizeAll converts a batch. Records without an id get element-N (N is
// the 1-based position). Unreadable records and duplicate ids are skipped and
// reported; the batch itself never fails.
func NormalizeAll(raw []map[string]any, opts Options) ([]domain.DesignElement, []Skipped) {
	elements := make([]domain.DesignElement, 0, len(raw))
	var skipped []Skipped
	seen := make(map[string]bool, len(raw))

	for i, r := range raw {
		e, err := Normalize(r, opts)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, Err: err})
			continue
		}
		if e.ID == "" {
			e.ID = fmt.Sprintf("element-%d", i+1)
		}
		if seen[e.ID] {
			skipped = append(skipped, Skipped{Index: i, Err: fmt.Errorf("%w: duplicate id %q", ErrUnrecognized, e.ID)})
			continue
		}
		seen[e.ID] = true
		elements = append(elements, e)
	}
	return elements, skipped
}

func readKind(get func(string) (any, bool), e domain.DesignElement) (domain.ElementKind, error) {
	v, ok := get("kind")
	if !ok {
		switch {
		case e.Text != "" || e.FontSize > 0:
			return domain.KindText, nil
		case e.AltText != nil:
			return domain.KindImage, nil
		default:
			return "", fmt.Errorf("%w: no type and nothing to infer it from", ErrUnrecognized)
		}
	}
	name := canonicalKey(asString(v))
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown type %q", ErrUnrecognized, asString(v))
}

func readPoint(get func(string) (any, bool)) *domain.Point {
	if v, ok := get("position"); ok {
		if m, ok := asMap(v); ok {
			r := newRecord(m)
			x, okX := floatField(r.lookup, "x")
			y, okY := floatField(r.lookup, "y")
			if okX && okY {
				return &domain.Point{X: x, Y: y}
			}
		}
	}
	x, okX := floatField(get, "x")
	y, okY := floatField(get, "y")
	if okX && okY {
		return &domain.Point{X: x, Y: y}
	}
	return nil
}

func readSize(get func(string) (any, bool)) *domain.Size {
	if v, ok := get("dimensions"); ok {
		if m, ok := asMap(v); ok {
			r := newRecord(m)
			w, okW := floatField(r.lookup, "width")
			h, okH := floatField(r.lookup, "height")
			if okW && okH {
				return &domain.Size{Width: w, Height: h}
			}
		}
	}
	w, okW := floatField(get, "width")
	h, okH := floatField(get, "height")
	if okW && okH {
		return &domain.Size{Width: w, Height: h}
	}
	return nil
}

func stringField(get func(string) (any, bool), field string) string {
	if v, ok := get(field); ok {
		return strings.TrimSpace(asString(v))
	}
	return ""
}

func floatField(get func(string) (any, bool), field string) (float64, bool) {
	v, ok := get(field)
	if !ok {
		return 0, false
	}
	return asFloat(v)
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// asFloat reads numbers in any of the shapes JSON and YAML decoders produce,
// plus strings such as "16px".
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, finite(n)
	case float32:
		return float64(n), finite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil && finite(f)
	case string:
		s := strings.TrimSpace(strings.ToLower(n))
		for _, unit := range []string{"px", "pt"} {
			s = strings.TrimSuffix(s, unit)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil && finite(f)
	default:
		return 0, false
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
