package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/designqa/designqa/internal/domain"
)

// ── Canvas-inspired palette ──
var (
	accent    = lipgloss.Color("#7D2AE8") // violet
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityCritical: lipgloss.NewStyle().Foreground(danger).Bold(true),
		domain.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FB923C")).Bold(true),
		domain.SeverityMedium:   lipgloss.NewStyle().Foreground(warning),
		domain.SeverityLow:      lipgloss.NewStyle().Foreground(info),
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	elementStyle  = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a report for the terminal: score header, one row per
// category, then the issues grouped by category with the worst first.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	grade := report.Grade()
	title := headerStyle.Render("designqa")
	subtitle := dimStyle.Render(fmt.Sprintf("Design Quality Score · %d elements · %dms", report.ElementCount, report.AnalysisTimeMs))
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", report.OverallScore))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Categories ──
	for _, cat := range report.Categories {
		renderCategory(&b, cat)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Issues ──
	if len(report.Issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	} else {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Issues"))
		for _, sev := range []domain.Severity{domain.SeverityCritical, domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow} {
			if n := countSeverity(report.Issues, sev); n > 0 {
				b.WriteString("  ")
				b.WriteString(severityStyles[sev].Render(fmt.Sprintf("%d %s", n, sev)))
			}
		}
		b.WriteString("\n")

		for _, cat := range domain.Categories {
			issues := report.IssuesIn(cat)
			if len(issues) == 0 {
				continue
			}
			b.WriteString("\n  " + catNameStyle.Render(string(cat)) + "\n")
			sortBySeverity(issues)
			for _, iss := range issues {
				renderIssue(&b, iss)
			}
		}
	}

	// ── Annotation ──
	if report.Annotation != nil {
		b.WriteString("\n  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render("Review") + "  " + faintStyle.Render(report.Annotation.Source) + "\n")
		b.WriteString("  " + report.Annotation.Summary + "\n")
		for _, s := range report.Annotation.Suggestions {
			b.WriteString("    " + dimStyle.Render("· "+s) + "\n")
		}
	}

	if report.CommitHash != "" {
		b.WriteString("\n  " + faintStyle.Render("commit "+shortHash(report.CommitHash)) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderCategory(b *strings.Builder, cat domain.CategoryResult) {
	name := padRight(string(cat.Category), 16)
	if !cat.Enabled {
		fmt.Fprintf(b, "  %s %s %s\n", skipStyle.Render("○"), skipStyle.Render(name), skipStyle.Render("disabled"))
		return
	}

	pct := 100
	if cat.Evaluated > 0 {
		pct = cat.Passed * 100 / cat.Evaluated
	}

	var icon string
	switch {
	case cat.Failed == 0:
		icon = passStyle.Render("●")
	case pct >= 50:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	tally := dimStyle.Render(fmt.Sprintf("%d/%d passed", cat.Passed, cat.Evaluated))
	if cat.Evaluated == 0 {
		tally = faintStyle.Render("nothing to check")
	}
	fmt.Fprintf(b, "  %s %s %s  %s\n", icon, catNameStyle.Render(name), coloredBar(pct, 20), tally)
}

func renderIssue(b *strings.Builder, iss domain.Issue) {
	tag := severityTag(iss.Severity)
	line := fmt.Sprintf("    %s %s", tag, iss.Title)
	if iss.ElementID != "" {
		line += "  " + elementStyle.Render(iss.ElementID)
	}
	if iss.Coordinates != nil {
		c := iss.Coordinates
		line += " " + faintStyle.Render(fmt.Sprintf("@%g,%g", c.X, c.Y))
	}
	b.WriteString(line + "\n")
	fmt.Fprintf(b, "             %s\n", dimStyle.Render(iss.Description))
	if iss.Suggestion != "" {
		fmt.Fprintf(b, "             %s\n", hintStyle.Render("→ "+iss.Suggestion))
	}
}

func severityTag(s domain.Severity) string {
	style, ok := severityStyles[s]
	if !ok {
		style = dimStyle
	}
	return style.Render(padRight(string(s), 8))
}

func countSeverity(issues []domain.Issue, s domain.Severity) int {
	n := 0
	for _, iss := range issues {
		if iss.Severity == s {
			n++
		}
	}
	return n
}

// sortBySeverity orders worst first, keeping report order among equals.
func sortBySeverity(issues []domain.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.Rank() > issues[j].Severity.Rank()
	})
}

func coloredBar(pct, width int) string {
	filled := max(0, min(pct*width/100, width))
	empty := width - filled

	color := scoreColor(pct)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}
