package report

import (
	"regexp"
	"strings"

	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// A strategy is one extraction tier: a pure function from page content
// and field spec to a candidate value, empty when the tier has no
// answer. Tiers run in declared order and the first non-empty value
// wins, most-structured source first.
type strategy func(page *domain.PageContent, field domain.ExpectedField, fields []domain.ExpectedField) string

var strategies = []strategy{
	fromTable,
	fromIPBlock,
	fromPatterns,
	fromGeneric,
}

// Extract returns the best-effort value for a field from the first
// page, or empty when no tier matches. fields is the full required set,
// used by the generic tier to bound over-capture.
func Extract(page *domain.PageContent, field domain.ExpectedField, fields []domain.ExpectedField) string {
	for _, s := range strategies {
		if v := s(page, field, fields); v != "" {
			return v
		}
	}
	return ""
}

// fromTable answers from the page's tabular structure: all rows of all
// tables collapsed into a first-cell -> second-cell map, later rows
// overwriting earlier ones.
func fromTable(page *domain.PageContent, field domain.ExpectedField, _ []domain.ExpectedField) string {
	cells := make(map[string]string)
	for _, table := range page.Tables {
		for _, row := range table {
			if len(row) < 2 {
				continue
			}
			key := strings.TrimSpace(row[0])
			if key == "" {
				continue
			}
			cells[key] = strings.TrimSpace(row[1])
		}
	}
	return cells[field.Name]
}

var urlTestedLine = regexp.MustCompile(`(?mi)^[ \t]*URL Tested`)

// fromIPBlock captures the whole IP block for the IP Address field:
// everything after the label up to the next line beginning with
// "URL Tested". Multi-line address lists defeat the single-line
// patterns, so this tier runs before them. Without the URL Tested
// anchor the capture is unbounded, so the tier declines.
func fromIPBlock(page *domain.PageContent, field domain.ExpectedField, _ []domain.ExpectedField) string {
	if field.Name != "IP Address" {
		return ""
	}
	idx := strings.Index(strings.ToLower(page.Text), strings.ToLower(field.Name))
	if idx < 0 {
		return ""
	}
	rest := page.Text[idx+len(field.Name):]
	loc := urlTestedLine.FindStringIndex(rest)
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(rest[:loc[0]], ": \t"))
}

// fromPatterns tries the field's own anchored patterns in declared
// order.
func fromPatterns(page *domain.PageContent, field domain.ExpectedField, _ []domain.ExpectedField) string {
	for _, p := range field.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(page.Text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

var (
	leadingJunk = regexp.MustCompile(`^[\s:\-]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// fromGeneric is the loose fallback: label followed by the same-line
// remainder, then label followed by the next-line remainder. The
// captured value is cut at the first occurrence of any other required
// field's label, since PDF text extraction often runs adjacent header
// cells together. Truncating on a label that legitimately appears
// inside a value can over-trim; this tier is a heuristic, not a parse.
func fromGeneric(page *domain.PageContent, field domain.ExpectedField, fields []domain.ExpectedField) string {
	quoted := regexp.QuoteMeta(field.Name)
	patterns := []string{
		`(?i)` + quoted + `\s*[:\s]+([^\n\r]+)`,
		`(?i)` + quoted + `[^\n]*\n\s*([^\n\r]+)`,
	}

	for _, p := range patterns {
		m := regexp.MustCompile(p).FindStringSubmatch(page.Text)
		if m == nil {
			continue
		}
		value := truncateAtLabels(m[1], field, fields)
		value = strings.TrimSpace(whitespace.ReplaceAllString(leadingJunk.ReplaceAllString(value, ""), " "))
		if len(value) > 1 {
			return value
		}
	}
	return ""
}

// truncateAtLabels cuts the value at the earliest occurrence of any
// other required field's label.
func truncateAtLabels(value string, field domain.ExpectedField, fields []domain.ExpectedField) string {
	lower := strings.ToLower(value)
	cut := len(value)
	for _, other := range fields {
		if other.Name == field.Name {
			continue
		}
		if i := strings.Index(lower, strings.ToLower(other.Name)); i >= 0 && i < cut {
			cut = i
		}
	}
	return value[:cut]
}
