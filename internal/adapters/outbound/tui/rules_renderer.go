package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/designqa/designqa/internal/domain"
)

var sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

// RenderRules lists the effective checks and thresholds.
func RenderRules(rules domain.Rules, checks domain.CheckConfiguration) string {
	var b strings.Builder

	b.WriteString("\n  " + sectionHeaderStyle.Render("Checks") + "\n")
	for _, c := range domain.Categories {
		if checks.Enabled(c) {
			fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("●"), c)
		} else {
			fmt.Fprintf(&b, "    %s %s\n", skipStyle.Render("○"), skipStyle.Render(string(c)+" (disabled)"))
		}
	}

	alt := "no"
	if rules.RequireAltText {
		alt = "yes"
	}
	rows := []struct{ name, value string }{
		{"min contrast ratio", fmt.Sprintf("%g:1", rules.MinContrastRatio)},
		{"large text contrast ratio", fmt.Sprintf("%g:1", rules.LargeTextContrastRatio)},
		{"large text size", fmt.Sprintf("%gpx", rules.LargeTextSize)},
		{"min font size", fmt.Sprintf("%gpx", rules.MinFontSize)},
		{"max font size", fmt.Sprintf("%gpx", rules.MaxFontSize)},
		{"max font families", fmt.Sprintf("%d", rules.MaxFontFamilies)},
		{"min spacing", fmt.Sprintf("%gpx", rules.MinSpacing)},
		{"alignment tolerance", fmt.Sprintf("%gpx", rules.AlignmentTolerance)},
		{"require alt text", alt},
	}

	b.WriteString("\n  " + sectionHeaderStyle.Render("Thresholds") + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render(padRight(r.name, 28)), r.value)
	}

	b.WriteString("\n  " + hintStyle.Render("Override thresholds in .designqa.yaml (designqa init)."))
	b.WriteString("\n")
	return b.String()
}
