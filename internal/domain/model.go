package domain

import (
	"strings"
	"time"
)

// TestType identifies the engagement type being QC'd. SB engagements
// carry network-scan artifacts in addition to the common deliverables.
type TestType string

const (
	TestTypeSB    TestType = "SB"
	TestTypeOther TestType = "OTHER"
)

// ParseTestType normalizes a user-supplied test type. Anything that is
// not "sb" (any case) falls back to the reduced check set.
func ParseTestType(s string) TestType {
	if strings.EqualFold(s, string(TestTypeSB)) {
		return TestTypeSB
	}
	return TestTypeOther
}

// StructureItem is a single directory or file entry in a structure
// report. Path is relative to the engagement base directory (slash
// separated); Detail carries annotations such as file counts or sizes.
type StructureItem struct {
	Path   string `json:"path"`
	Detail string `json:"detail,omitempty"`
}

// StructureReport is the outcome of checking one engagement directory
// against the required deliverable tree.
type StructureReport struct {
	BasePath      string          `json:"base_path"`
	TestType      TestType        `json:"test_type"`
	ExistingDirs  []StructureItem `json:"existing_dirs,omitempty"`
	MissingDirs   []StructureItem `json:"missing_dirs,omitempty"`
	ExistingFiles []StructureItem `json:"existing_files,omitempty"`
	MissingFiles  []StructureItem `json:"missing_files,omitempty"`
	FileIssues    []StructureItem `json:"file_issues,omitempty"`
}

// Passed reports whether the tree is fully valid: nothing missing and
// no size issues. Too-small files are issues, not missing entries, so
// they fail QC through their own category.
func (r *StructureReport) Passed() bool {
	return len(r.MissingDirs) == 0 && len(r.MissingFiles) == 0 && len(r.FileIssues) == 0
}

// FieldType selects the validator applied to an extracted header field.
type FieldType string

const (
	FieldTypeDate   FieldType = "date"
	FieldTypeStatus FieldType = "status"
	FieldTypeIP     FieldType = "ip"
	FieldTypeText   FieldType = "text"
)

// ExpectedField describes one required header field on a report's
// first page: what it is called, how to validate it, and optional
// anchored extraction patterns tried before the generic fallback.
type ExpectedField struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Expected string    `json:"expected,omitempty"`
	Patterns []string  `json:"patterns,omitempty"`
}

// FieldResult records the extraction and validation outcome for one
// required field.
type FieldResult struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ValidationReport is the outcome of validating one PDF report's
// header fields. Fields preserves the required-field order.
type ValidationReport struct {
	FilePath string        `json:"file_path"`
	Passed   bool          `json:"passed"`
	Fields   []FieldResult `json:"fields,omitempty"`
	Errors   []string      `json:"errors,omitempty"`
}

// Field returns the result for a named field, if present.
func (r *ValidationReport) Field(name string) (FieldResult, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldResult{}, false
}

// PageContent is the extracted content of a PDF page as seen by the
// field-extraction tiers: the plain text plus whatever tabular
// structure the backend recovered (ordered rows of ordered cell
// strings; cells may be empty).
type PageContent struct {
	Text   string
	Tables [][][]string
}

// TreeSnapshot is a read-only view of an engagement directory captured
// by the scanner: which relative paths exist as directories, and file
// sizes by relative path. Paths are slash separated.
type TreeSnapshot struct {
	BasePath string
	Exists   bool
	IsDir    bool
	Dirs     map[string]bool
	Files    map[string]int64
}

// RunEntry is one QC invocation recorded in the run log.
type RunEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Kind       string    `json:"kind"` // "structure" or "report"
	Target     string    `json:"target"`
	Passed     bool      `json:"passed"`
	Issues     int       `json:"issues"`
	CommitHash string    `json:"commit_hash,omitempty"`
}
