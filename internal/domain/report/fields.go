package report

import (
	"regexp"

	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// dateToken matches the date shapes the validator accepts. Anchored
// patterns use it so a date field never captures trailing prose.
const dateToken = `\d{1,2}[/-]\d{1,2}[/-]\d{4}|\d{4}[-/]\d{1,2}[-/]\d{1,2}`

// RequiredFields returns the declarative table of header fields every
// report's first page must carry, in validation order. New fields are
// added here, not in the extractor or validators.
func RequiredFields(cfg domain.QCConfig) []domain.ExpectedField {
	return []domain.ExpectedField{
		{
			Name:     "Preliminary Date",
			Type:     domain.FieldTypeDate,
			Patterns: datePatterns("Preliminary Date"),
		},
		{
			Name:     "Report Issued Date",
			Type:     domain.FieldTypeDate,
			Patterns: datePatterns("Report Issued Date"),
		},
		{
			Name:     "Report Status",
			Type:     domain.FieldTypeStatus,
			Expected: cfg.ExpectedStatus,
			Patterns: []string{
				`(?i)Report Status\s*[:\s]+(` + regexp.QuoteMeta(cfg.ExpectedStatus) + `)`,
			},
		},
		{
			// No anchored pattern: a person's name has no reliable
			// shape, so the generic tier with label truncation is the
			// best available capture.
			Name: "VA Manager",
			Type: domain.FieldTypeText,
		},
		{
			Name: "IP Address",
			Type: domain.FieldTypeIP,
			Patterns: []string{
				`(?i)IP Address(?:\(es\))?\s*[:\s]+((?:\d{1,3}\.){3}\d{1,3}[^\n\r]*)`,
			},
		},
	}
}

// datePatterns anchors a date-typed label to a date-shaped value, on
// the same line first, then on the following line.
func datePatterns(label string) []string {
	quoted := regexp.QuoteMeta(label)
	return []string{
		`(?i)` + quoted + `\s*[:\s]+(` + dateToken + `)`,
		`(?i)` + quoted + `[^\n]*\n\s*(` + dateToken + `)`,
	}
}
