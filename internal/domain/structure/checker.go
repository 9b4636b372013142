package structure

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// requiredTree is the deliverable layout every engagement directory
// must contain, in report order.
var requiredTree = []struct {
	name     string
	children []string
}{
	{"NVA", []string{"NESSUS", "NMAP", "QUALYS"}},
	{"REPORTS", nil},
	{"REQUESTINFO", nil},
}

// nmapSuffixes builds the six required NMAP artifact names, in report order.
var nmapSuffixes = []string{
	"_TCP.gnmap", "_TCP.nmap", "_TCP.xml",
	"_UDP.gnmap", "_UDP.nmap", "_UDP.xml",
}

// BasePrefix extracts the engagement prefix from the base directory
// name: everything before the first hyphen, or the whole name when
// there is none.
func BasePrefix(basePath string) string {
	name := filepath.Base(basePath)
	if i := strings.Index(name, "-"); i >= 0 {
		return name[:i]
	}
	return name
}

// Check evaluates a directory snapshot against the required engagement
// tree and the file rules for the given test type. It never touches
// the filesystem; all inputs come from the snapshot.
func Check(snap *domain.TreeSnapshot, testType domain.TestType, cfg domain.QCConfig) *domain.StructureReport {
	report := &domain.StructureReport{
		BasePath: snap.BasePath,
		TestType: testType,
	}

	// A missing or non-directory base fails fast: one missing entry,
	// nothing deeper is probed.
	if !snap.Exists {
		report.MissingDirs = append(report.MissingDirs, domain.StructureItem{Path: snap.BasePath})
		return report
	}
	if !snap.IsDir {
		report.MissingDirs = append(report.MissingDirs, domain.StructureItem{
			Path:   snap.BasePath,
			Detail: "not a directory",
		})
		return report
	}

	baseName := filepath.Base(snap.BasePath)
	report.ExistingDirs = append(report.ExistingDirs, domain.StructureItem{Path: baseName})

	for _, dir := range requiredTree {
		if !snap.Dirs[dir.name] {
			report.MissingDirs = append(report.MissingDirs, domain.StructureItem{
				Path: path.Join(baseName, dir.name),
			})
			// Children of a missing directory are not probed individually.
			continue
		}
		report.ExistingDirs = append(report.ExistingDirs, domain.StructureItem{
			Path: path.Join(baseName, dir.name),
		})
		for _, child := range dir.children {
			rel := path.Join(dir.name, child)
			item := domain.StructureItem{Path: path.Join(baseName, rel)}
			if snap.Dirs[rel] {
				report.ExistingDirs = append(report.ExistingDirs, item)
			} else {
				report.MissingDirs = append(report.MissingDirs, item)
			}
		}
	}

	if testType == domain.TestTypeSB {
		checkNessus(report, snap)
		checkNmap(report, snap)
	}
	checkProfile(report, snap, cfg)

	return report
}

// checkNessus requires at least one .nessus export in NVA/NESSUS.
// Skipped when the folder itself is absent (already reported missing).
func checkNessus(report *domain.StructureReport, snap *domain.TreeSnapshot) {
	if !snap.Dirs["NVA/NESSUS"] {
		return
	}
	count := 0
	for f := range snap.Files {
		rest, ok := strings.CutPrefix(f, "NVA/NESSUS/")
		if ok && !strings.Contains(rest, "/") && strings.HasSuffix(rest, ".nessus") {
			count++
		}
	}
	pattern := "NVA/NESSUS/*.nessus"
	if count > 0 {
		report.ExistingFiles = append(report.ExistingFiles, domain.StructureItem{
			Path:   pattern,
			Detail: fmt.Sprintf("%d file(s) found", count),
		})
	} else {
		report.MissingFiles = append(report.MissingFiles, domain.StructureItem{Path: pattern})
	}
}

// checkNmap requires the six prefix-derived TCP/UDP scan outputs in
// NVA/NMAP.
func checkNmap(report *domain.StructureReport, snap *domain.TreeSnapshot) {
	if !snap.Dirs["NVA/NMAP"] {
		return
	}
	prefix := BasePrefix(snap.BasePath)
	for _, suffix := range nmapSuffixes {
		rel := "NVA/NMAP/" + prefix + suffix
		if _, ok := snap.Files[rel]; ok {
			report.ExistingFiles = append(report.ExistingFiles, domain.StructureItem{Path: rel})
		} else {
			report.MissingFiles = append(report.MissingFiles, domain.StructureItem{Path: rel})
		}
	}
}

// checkProfile requires the Attack Surface Profile spreadsheet in
// REQUESTINFO and enforces its minimum size. A present-but-too-small
// file is an issue, not a missing file: remediation differs.
func checkProfile(report *domain.StructureReport, snap *domain.TreeSnapshot, cfg domain.QCConfig) {
	if !snap.Dirs["REQUESTINFO"] {
		return
	}
	name := BasePrefix(snap.BasePath) + "-Attack Surface Profile.xlsx"
	rel := "REQUESTINFO/" + name

	size, ok := snap.Files[rel]
	if !ok {
		report.MissingFiles = append(report.MissingFiles, domain.StructureItem{Path: rel})
		return
	}

	sizeKB := float64(size) / 1024
	if size > int64(cfg.ProfileMinKB)*1024 {
		report.ExistingFiles = append(report.ExistingFiles, domain.StructureItem{
			Path:   rel,
			Detail: fmt.Sprintf("%.1f KB", sizeKB),
		})
	} else {
		report.FileIssues = append(report.FileIssues, domain.StructureItem{
			Path:   rel,
			Detail: fmt.Sprintf("file too small (%.1f KB, requires > %d KB)", sizeKB, cfg.ProfileMinKB),
		})
	}
}
