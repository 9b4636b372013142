package application

import (
	"fmt"

	"github.com/ScottGunn22/dirchecker/internal/domain"
	"github.com/ScottGunn22/dirchecker/internal/domain/structure"
)

// StructureService orchestrates the directory QC pipeline:
// load config -> snapshot tree -> check -> log run.
type StructureService struct {
	scanner domain.TreeScanner
	config  domain.ConfigLoader
	runLogger
}

func NewStructureService(
	scanner domain.TreeScanner,
	config domain.ConfigLoader,
	history domain.RunHistory,
	git domain.GitInfo,
) *StructureService {
	return &StructureService{
		scanner:   scanner,
		config:    config,
		runLogger: runLogger{history: history, git: git},
	}
}

// CheckStructure verifies one engagement directory against the
// required deliverable tree for the given test type.
func (s *StructureService) CheckStructure(basePath string, testType domain.TestType) (*domain.StructureReport, error) {
	cfg, err := s.config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	snap, err := s.scanner.Scan(basePath)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", basePath, err)
	}

	report := structure.Check(snap, testType, cfg)

	issues := len(report.MissingDirs) + len(report.MissingFiles) + len(report.FileIssues)
	s.record(cfg, "structure", basePath, report.Passed(), issues)

	return report, nil
}
