// Package sample provides showcase and randomly generated design elements
// for demos. Nothing here is used by the scoring path itself.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/designqa/designqa/internal/domain"
)

// Raw returns the showcase selection in the host's wire shape: a readable
// headline, a small low-contrast caption set in a second family, and an image
// without alt text.
func Raw() []map[string]any {
	return []map[string]any{
		{
			"id":   "text-1",
			"type": "text",
			"properties": map[string]any{
				"color":           "#333333",
				"backgroundColor": "#FFFFFF",
				"fontSize":        16.0,
				"fontFamily":      "Arial",
				"position":        map[string]any{"x": 100.0, "y": 50.0},
				"text":            "Sample headline",
			},
		},
		{
			"id":   "text-2",
			"type": "text",
			"properties": map[string]any{
				"color":           "#888888",
				"backgroundColor": "#FFFFFF",
				"fontSize":        10.0,
				"fontFamily":      "Helvetica",
				"position":        map[string]any{"x": 103.0, "y": 52.0},
				"text":            "Sample body text",
			},
		},
		{
			"id":   "image-1",
			"type": "image",
			"properties": map[string]any{
				"position": map[string]any{"x": 50.0, "y": 200.0},
				"altText":  "",
			},
		},
	}
}

// Elements returns the showcase selection as domain elements. It matches
// what the collector produces from Raw.
func Elements() []domain.DesignElement {
	empty := ""
	return []domain.DesignElement{
		{
			ID:              "text-1",
			Kind:            domain.KindText,
			Position:        &domain.Point{X: 100, Y: 50},
			Color:           "#333333",
			BackgroundColor: "#FFFFFF",
			FontSize:        16,
			FontFamily:      "Arial",
			Text:            "Sample headline",
		},
		{
			ID:              "text-2",
			Kind:            domain.KindText,
			Position:        &domain.Point{X: 103, Y: 52},
			Color:           "#888888",
			BackgroundColor: "#FFFFFF",
			FontSize:        10,
			FontFamily:      "Helvetica",
			Text:            "Sample body text",
		},
		{
			ID:       "image-1",
			Kind:     domain.KindImage,
			Position: &domain.Point{X: 50, Y: 200},
			AltText:  &empty,
		},
	}
}

var (
	families    = []string{"Inter", "Roboto", "Georgia", "Montserrat", "Lato", "Merriweather"}
	foregrounds = []string{"#111111", "#333333", "#1A237E", "#777777", "#AAAAAA", "#FFFFFF"}
	backgrounds = []string{"#FFFFFF", "#F5F5F5", "#FFF8E1", "#263238", "#CCCCCC"}
	fontSizes   = []float64{8, 10, 12, 14, 16, 18, 24, 32, 48, 72}
	altTexts    = []string{"", "Product photo", "Team at the launch event", "  "}
)

// Generator lays out random rows of elements. Layouts are deterministic for a
// given seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns count elements arranged in rows of up to three, with
// occasional jitter so some elements crowd or drift off their row.
func (g *Generator) Generate(count int) []domain.DesignElement {
	if count <= 0 {
		return []domain.DesignElement{}
	}
	out := make([]domain.DesignElement, 0, count)
	y := 40.0
	for i := 0; i < count; i++ {
		col := i % 3
		if col == 0 && i > 0 {
			y += 120 + g.jitter(12)
		}
		x := 40 + float64(col)*220
		if col == 0 {
			x += g.jitter(10)
		}
		pos := &domain.Point{X: x, Y: y + g.jitter(4)}
		size := &domain.Size{Width: 180 + g.jitter(40), Height: 60 + g.jitter(20)}

		id := fmt.Sprintf("el-%d", i+1)
		switch g.rng.Intn(4) {
		case 0:
			alt := altTexts[g.rng.Intn(len(altTexts))]
			out = append(out, domain.DesignElement{
				ID: id, Kind: domain.KindImage, Position: pos, Dimensions: size, AltText: &alt,
			})
		case 1:
			out = append(out, domain.DesignElement{
				ID: id, Kind: domain.KindShape, Position: pos, Dimensions: size,
				Color: backgrounds[g.rng.Intn(len(backgrounds))],
			})
		default:
			out = append(out, domain.DesignElement{
				ID:              id,
				Kind:            domain.KindText,
				Position:        pos,
				Dimensions:      size,
				Color:           foregrounds[g.rng.Intn(len(foregrounds))],
				BackgroundColor: backgrounds[g.rng.Intn(len(backgrounds))],
				FontSize:        fontSizes[g.rng.Intn(len(fontSizes))],
				FontFamily:      families[g.rng.Intn(len(families))],
				Text:            fmt.Sprintf("Sample copy %d", i+1),
			})
		}
	}
	return out
}

// jitter returns a whole number in [-n, n].
func (g *Generator) jitter(n int) float64 {
	return float64(g.rng.Intn(2*n+1) - n)
}
