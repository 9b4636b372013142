package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// dateLayouts are the accepted calendar formats. The non-padded verbs
// accept both 3/1/2025 and 03/01/2025. Parsing is strict: a
// shape-valid but impossible date (02/30/2025) fails every layout.
var dateLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"2006-1-2",
	"2006/1/2",
}

var dottedQuad = regexp.MustCompile(`\d{1,3}(?:\.\d{1,3}){3}`)

// Validate applies the type-dispatched validator for a field to its
// extracted value and returns validity plus a diagnostic.
func Validate(field domain.ExpectedField, value string) (bool, string) {
	switch field.Type {
	case domain.FieldTypeDate:
		return validateDate(field.Name, value)
	case domain.FieldTypeStatus:
		return validateStatus(field.Name, value, field.Expected)
	case domain.FieldTypeIP:
		return validateIP(field.Name, value)
	default:
		return validateText(field.Name, value)
	}
}

func validateDate(name, value string) (bool, string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false, fmt.Sprintf("%s field is empty", name)
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, trimmed); err == nil {
			return true, "valid date"
		}
	}
	return false, fmt.Sprintf("invalid date: %q", trimmed)
}

func validateStatus(name, value, expected string) (bool, string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false, fmt.Sprintf("%s field is empty", name)
	}
	if strings.EqualFold(trimmed, expected) {
		return true, fmt.Sprintf("status matches expected value %q", expected)
	}
	return false, fmt.Sprintf("status mismatch: expected %q, found %q", expected, trimmed)
}

// validateIP accepts the field when the captured value contains at
// least one dotted quad and every dotted quad found is in range. One
// out-of-range address taints the whole field.
func validateIP(name, value string) (bool, string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false, fmt.Sprintf("%s field is empty", name)
	}

	matches := dottedQuad.FindAllString(trimmed, -1)
	if len(matches) == 0 {
		return false, fmt.Sprintf("no IPs found in %q", trimmed)
	}

	var outOfRange []string
	for _, m := range matches {
		for _, octet := range strings.Split(m, ".") {
			if n, _ := strconv.Atoi(octet); n > 255 {
				outOfRange = append(outOfRange, m)
				break
			}
		}
	}
	if len(outOfRange) > 0 {
		return false, fmt.Sprintf("IP address out of valid range: %s", strings.Join(outOfRange, ", "))
	}
	return true, fmt.Sprintf("%d valid IP address(es) found", len(matches))
}

func validateText(name, value string) (bool, string) {
	if len(strings.TrimSpace(value)) < 2 {
		return false, fmt.Sprintf("%s field is empty or too short", name)
	}
	return true, fmt.Sprintf("%s contains valid text", name)
}
