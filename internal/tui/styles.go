package tui

import (
	"strconv"
	"strings"

	"solana-patterns/internal/markup"
	"solana-patterns/internal/models"
	"solana-patterns/internal/widgets"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCritical = lipgloss.Color("#ff4d6d")
	colorHigh     = lipgloss.Color("#ffaa00")
	colorMedium   = lipgloss.Color("#f4d35e")
	colorAccent   = lipgloss.Color("#14f195")
	colorPurple   = lipgloss.Color("#9945ff")
	colorMuted    = lipgloss.Color("#666666")
	colorCode     = lipgloss.Color("#e0e0e0")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPurple).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	inlineCode   = lipgloss.NewStyle().Foreground(colorAccent)
	lineNumber   = lipgloss.NewStyle().Foreground(colorMuted).Width(4).Align(lipgloss.Right).MarginRight(1)
	copiedStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorCritical)

	vulnerableHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCritical)
	secureHeader     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

func severityColor(s models.Severity) lipgloss.Color {
	switch s {
	case models.SeverityCritical:
		return colorCritical
	case models.SeverityHigh:
		return colorHigh
	case models.SeverityMedium:
		return colorMedium
	default:
		return colorMuted
	}
}

func severityBadge(s models.Severity) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(severityColor(s)).
		Padding(0, 1).
		Render(strings.ToUpper(s.Label()))
}

// tokenStyle — цвет по первой букве короткого класса chroma
func tokenStyle(class string) lipgloss.Style {
	if class == "" {
		return lipgloss.NewStyle().Foreground(colorCode)
	}
	switch class[0] {
	case 'k':
		return lipgloss.NewStyle().Foreground(colorPurple).Bold(true)
	case 's':
		return lipgloss.NewStyle().Foreground(colorMedium)
	case 'c':
		return lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	case 'm':
		return lipgloss.NewStyle().Foreground(colorHigh)
	case 'n':
		if strings.HasPrefix(class, "nf") || strings.HasPrefix(class, "nt") {
			return lipgloss.NewStyle().Foreground(colorAccent)
		}
	}
	return lipgloss.NewStyle().Foreground(colorCode)
}

func variantHeader(v widgets.Variant) lipgloss.Style {
	if v == widgets.VariantVulnerable {
		return vulnerableHeader
	}
	return secureHeader
}

func renderSpans(spans []markup.Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch {
		case s.Code:
			b.WriteString(inlineCode.Render(s.Text))
		case s.Bold:
			b.WriteString(boldStyle.Render(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// renderProse — те же группы, что и в HTML, только для терминала
func renderProse(text string, width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	var parts []string
	for _, g := range markup.Render(text) {
		switch {
		case g.IsHeading():
			parts = append(parts, headingStyle.Render(renderSpans(g.Blocks[0].Spans)))
		case g.IsBulletList():
			for _, item := range g.Blocks {
				parts = append(parts, wrap.Render("  • "+renderSpans(item.Spans)))
			}
		case g.IsOrderedList():
			for _, item := range g.Blocks {
				parts = append(parts, wrap.Render("  "+strconv.Itoa(item.Number)+". "+renderSpans(item.Spans)))
			}
		default:
			parts = append(parts, wrap.Render(renderSpans(g.Blocks[0].Spans)))
		}
	}
	return strings.Join(parts, "\n")
}
