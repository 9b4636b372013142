package tui_test

import (
	"testing"
	"time"

	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/tui"
	"github.com/ScottGunn22/dirchecker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderStructureReport_Pass(t *testing.T) {
	report := &domain.StructureReport{
		BasePath: "ABC123-20240115",
		TestType: domain.TestTypeSB,
		ExistingDirs: []domain.StructureItem{
			{Path: "ABC123-20240115"},
			{Path: "ABC123-20240115/NVA"},
		},
		ExistingFiles: []domain.StructureItem{
			{Path: "NVA/NESSUS/*.nessus", Detail: "2 file(s) found"},
		},
	}

	out := tui.RenderStructureReport(report)

	assert.Contains(t, out, "Directory Structure & File QC")
	assert.Contains(t, out, "QC PASSED")
	assert.Contains(t, out, "Existing Directories")
	assert.Contains(t, out, "2 file(s) found")
	assert.NotContains(t, out, "Missing")
}

func TestRenderStructureReport_FailSummarizesCounts(t *testing.T) {
	report := &domain.StructureReport{
		BasePath: "ABC123-20240115",
		TestType: domain.TestTypeSB,
		MissingDirs: []domain.StructureItem{
			{Path: "ABC123-20240115/NVA/QUALYS"},
		},
		MissingFiles: []domain.StructureItem{
			{Path: "NVA/NMAP/ABC123_TCP.xml"},
			{Path: "NVA/NMAP/ABC123_UDP.xml"},
		},
		FileIssues: []domain.StructureItem{
			{Path: "REQUESTINFO/ABC123-Attack Surface Profile.xlsx", Detail: "file too small (12.0 KB, requires > 25 KB)"},
		},
	}

	out := tui.RenderStructureReport(report)

	assert.Contains(t, out, "QC FAILED")
	assert.Contains(t, out, "1 missing directories")
	assert.Contains(t, out, "2 missing files")
	assert.Contains(t, out, "1 file issues")
	assert.Contains(t, out, "file too small")
}

func TestRenderExpectedStructure(t *testing.T) {
	sb := tui.RenderExpectedStructure(domain.TestTypeSB)
	assert.Contains(t, sb, "REQUESTINFO")
	assert.Contains(t, sb, "XXXXXX_TCP.gnmap")
	assert.Contains(t, sb, ">25KB")

	other := tui.RenderExpectedStructure(domain.TestTypeOther)
	assert.Contains(t, other, "Attack Surface Profile")
	assert.NotContains(t, other, "XXXXXX_TCP.gnmap")
}

func TestRenderValidationReport(t *testing.T) {
	report := &domain.ValidationReport{
		FilePath: "REPORTS/final.pdf",
		Passed:   false,
		Fields: []domain.FieldResult{
			{Name: "Preliminary Date", Value: "02/14/2025", Valid: true, Message: "valid date"},
			{Name: "Report Status", Value: "", Valid: false, Message: "Report Status field is empty"},
		},
		Errors: []string{"Report Status: Report Status field is empty"},
	}

	out := tui.RenderValidationReport(report)

	assert.Contains(t, out, "PDF Header Validation")
	assert.Contains(t, out, "QC FAILED")
	assert.Contains(t, out, "02/14/2025")
	assert.Contains(t, out, "(not found)")
	assert.Contains(t, out, "Errors")
}

func TestRenderRunHistory(t *testing.T) {
	assert.Contains(t, tui.RenderRunHistory(nil), "No QC runs recorded")

	entries := []domain.RunEntry{
		{
			Timestamp:  time.Date(2025, 2, 14, 10, 30, 0, 0, time.UTC),
			Kind:       "structure",
			Target:     "ABC123-20240115",
			Passed:     true,
			CommitHash: "0123456789abcdef",
		},
		{
			Timestamp: time.Date(2025, 2, 14, 11, 0, 0, 0, time.UTC),
			Kind:      "report",
			Target:    "final.pdf",
			Passed:    false,
			Issues:    2,
		},
	}

	out := tui.RenderRunHistory(entries)

	assert.Contains(t, out, "QC Run History")
	assert.Contains(t, out, "2025-02-14 10:30")
	assert.Contains(t, out, "0123456")
	assert.NotContains(t, out, "0123456789abcdef", "hashes are shortened")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL (2)")
}
