// Package display renders recipes for the terminal: quantity and
// ingredient formatting, the coloured text block, and the banner.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ── Styles (soft palette) ───────────────────────────────────────

var (
	// BannerStyle is muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Italic(true)

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)

// Highlight colours a plain recipe text block line by line. The text
// itself is unchanged, so stripping the escape codes gives the input
// back.
func Highlight(block string) string {
	lines := strings.Split(block, "\n")
	titleNext := false
	for i, l := range lines {
		trimmed := strings.TrimSpace(l)
		switch {
		case trimmed == "":
		case isRule(trimmed, '='):
			lines[i] = ruleStyle.Render(l)
			titleNext = !titleNext && i == 0
		case titleNext:
			lines[i] = titleStyle.Render(l)
			titleNext = false
		case isRule(trimmed, '─'):
			lines[i] = ruleStyle.Render(l)
		case trimmed == "INGREDIENTS" || trimmed == "INSTRUCTIONS":
			lines[i] = headerStyle.Render(l)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			lines[i] = sectionStyle.Render(l)
		case strings.HasPrefix(trimmed, "Note:"):
			lines[i] = urgentStyle.Render(l)
		case strings.HasPrefix(trimmed, "Source:"),
			strings.HasPrefix(trimmed, "Servings:"),
			strings.HasPrefix(trimmed, "Prep Time:"),
			strings.HasPrefix(trimmed, "Cook Time:"),
			strings.HasPrefix(trimmed, "Total Time:"),
			strings.HasPrefix(trimmed, "Scale:"):
			lines[i] = secondaryStyle.Render(l)
		default:
			lines[i] = primaryStyle.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

func isRule(s string, r rune) bool {
	for _, c := range s {
		if c != r {
			return false
		}
	}
	return len(s) >= 3
}
