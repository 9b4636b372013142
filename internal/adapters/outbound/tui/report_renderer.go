package tui

import (
	"fmt"
	"strings"

	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// RenderValidationReport renders a PDF header ValidationReport as a
// styled TUI string, field results in required-field order.
func RenderValidationReport(report *domain.ValidationReport) string {
	var b strings.Builder

	header := titleStyle.Render("PDF Header Validation") + "\n" +
		dimStyle.Render(report.FilePath)
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString("  " + overallLine(report.Passed) + "\n")

	if len(report.Fields) > 0 {
		b.WriteString("\n")
		for _, f := range report.Fields {
			glyph := passStyle.Render("●")
			if !f.Valid {
				glyph = failStyle.Render("●")
			}
			value := f.Value
			if value == "" {
				value = dimStyle.Render("(not found)")
			}
			fmt.Fprintf(&b, "    %s %s  %s\n", glyph, titleStyle.Render(padRight(f.Name, 20)), value)
			fmt.Fprintf(&b, "      %s\n", dimStyle.Render(f.Message))
		}
	}

	if len(report.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + sectionStyle.Render("Errors") + "\n")
		for _, e := range report.Errors {
			fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("•"), dimStyle.Render(e))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
