package tui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// RenderStructureReport renders a StructureReport as a styled TUI
// string. Pure: no I/O, deterministic for a given report.
func RenderStructureReport(report *domain.StructureReport) string {
	var b strings.Builder

	header := titleStyle.Render("Directory Structure & File QC") + "\n" +
		dimStyle.Render(report.BasePath) + "\n" +
		dimStyle.Render(fmt.Sprintf("test type: %s  platform: %s", report.TestType, runtime.GOOS))
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n")

	renderItemSection(&b, "Existing Directories", passStyle, report.ExistingDirs)
	renderItemSection(&b, "Missing Directories", failStyle, report.MissingDirs)
	renderItemSection(&b, "Existing Files", passStyle, report.ExistingFiles)
	renderItemSection(&b, "Missing Files", failStyle, report.MissingFiles)
	renderItemSection(&b, "File Issues", warnStyle, report.FileIssues)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	b.WriteString("  " + overallLine(report.Passed()))
	if report.Passed() {
		b.WriteString("  " + dimStyle.Render("all required directories and files exist"))
	} else {
		var problems []string
		if n := len(report.MissingDirs); n > 0 {
			problems = append(problems, fmt.Sprintf("%d missing directories", n))
		}
		if n := len(report.MissingFiles); n > 0 {
			problems = append(problems, fmt.Sprintf("%d missing files", n))
		}
		if n := len(report.FileIssues); n > 0 {
			problems = append(problems, fmt.Sprintf("%d file issues", n))
		}
		b.WriteString("  " + dimStyle.Render(strings.Join(problems, ", ")))
	}
	b.WriteString("\n")

	return b.String()
}

// RenderExpectedStructure prints the deliverable tree and file set an
// engagement directory is expected to contain. Shown on invocation
// errors and by the expected command.
func RenderExpectedStructure(testType domain.TestType) string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("Expected Directory Structure") + "\n\n")
	for _, line := range []string{
		"XXXXXX-XXXXXXXX" + pathSep,
		"├── NVA" + pathSep,
		"│   ├── NESSUS" + pathSep,
		"│   ├── NMAP" + pathSep,
		"│   └── QUALYS" + pathSep,
		"├── REPORTS" + pathSep,
		"└── REQUESTINFO" + pathSep,
	} {
		b.WriteString("  " + warnStyle.Render(line) + "\n")
	}

	b.WriteString("\n  " + titleStyle.Render("Expected Files") + "\n\n")
	var files []string
	if testType == domain.TestTypeSB {
		files = []string{
			displayPath("NVA/NESSUS/*.nessus") + "  (any .nessus file)",
			displayPath("NVA/NMAP/XXXXXX_TCP.gnmap"),
			displayPath("NVA/NMAP/XXXXXX_TCP.nmap"),
			displayPath("NVA/NMAP/XXXXXX_TCP.xml"),
			displayPath("NVA/NMAP/XXXXXX_UDP.gnmap"),
			displayPath("NVA/NMAP/XXXXXX_UDP.nmap"),
			displayPath("NVA/NMAP/XXXXXX_UDP.xml"),
			displayPath("REQUESTINFO/XXXXXX-Attack Surface Profile.xlsx") + "  (>25KB)",
		}
	} else {
		files = []string{
			displayPath("REQUESTINFO/XXXXXX-Attack Surface Profile.xlsx") + "  (>25KB)",
		}
	}
	for _, f := range files {
		b.WriteString("  " + warnStyle.Render(f) + "\n")
	}
	b.WriteString("\n")

	return b.String()
}
