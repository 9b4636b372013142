package application

import (
	"fmt"
	"strings"

	"github.com/ScottGunn22/dirchecker/internal/domain"
	"github.com/ScottGunn22/dirchecker/internal/domain/report"
)

// ReportService orchestrates PDF header validation:
// load config -> extract first page -> extract and validate each
// required field -> log run.
type ReportService struct {
	reader domain.PageReader
	config domain.ConfigLoader
	runLogger
}

func NewReportService(
	reader domain.PageReader,
	config domain.ConfigLoader,
	history domain.RunHistory,
	git domain.GitInfo,
) *ReportService {
	return &ReportService{
		reader:    reader,
		config:    config,
		runLogger: runLogger{history: history, git: git},
	}
}

// ValidateReport checks the required header fields on the first page
// of a PDF report. Backend failures (unreadable or corrupt PDF, empty
// first page) are recorded as report errors, not returned: the report
// simply fails.
func (s *ReportService) ValidateReport(pdfPath string) (*domain.ValidationReport, error) {
	cfg, err := s.config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &domain.ValidationReport{FilePath: pdfPath}
	defer func() {
		s.record(cfg, "report", pdfPath, result.Passed, len(result.Errors))
	}()

	page, err := s.reader.ReadFirstPage(pdfPath)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("error processing PDF: %v", err))
		return result, nil
	}
	if strings.TrimSpace(page.Text) == "" && len(page.Tables) == 0 {
		result.Errors = append(result.Errors, "could not extract text from first page")
		return result, nil
	}

	fields := report.RequiredFields(cfg)
	result.Passed = true
	for _, field := range fields {
		value := report.Extract(page, field, fields)
		valid, message := report.Validate(field, value)
		result.Fields = append(result.Fields, domain.FieldResult{
			Name:    field.Name,
			Value:   value,
			Valid:   valid,
			Message: message,
		})
		if !valid {
			result.Passed = false
			result.Errors = append(result.Errors, field.Name+": "+message)
		}
	}

	return result, nil
}
