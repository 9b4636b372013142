package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/ScottGunn22/dirchecker/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// pathSep is the display separator, chosen once per platform so
// reports read naturally on Windows and Unix alike.
var pathSep = string(os.PathSeparator)

// displayPath converts a slash-relative report path to the platform's
// display form.
func displayPath(p string) string {
	if pathSep == "/" {
		return p
	}
	return strings.ReplaceAll(p, "/", pathSep)
}

func overallLine(passed bool) string {
	if passed {
		return passStyle.Bold(true).Render("QC PASSED")
	}
	return failStyle.Bold(true).Render("QC FAILED")
}

func renderItemSection(b *strings.Builder, title string, style lipgloss.Style, items []domain.StructureItem) {
	if len(items) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", len(items))),
	)

	for _, item := range items {
		line := fmt.Sprintf("    %s %s", style.Render("●"), displayPath(item.Path))
		if item.Detail != "" {
			line += "  " + faintStyle.Render(item.Detail)
		}
		b.WriteString(line + "\n")
	}
}

// RenderRunHistory formats the QC run log for terminal output.
func RenderRunHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No QC runs recorded.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("QC Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		status := passStyle.Render("PASS")
		if !e.Passed {
			status = failStyle.Render(fmt.Sprintf("FAIL (%d)", e.Issues))
		}

		fmt.Fprintf(&b, "  %s  %s  %-9s  %s  %s\n",
			dimStyle.Render(e.Timestamp.Format("2006-01-02 15:04")),
			faintStyle.Render(hash),
			e.Kind,
			status,
			e.Target,
		)
	}

	return b.String()
}
