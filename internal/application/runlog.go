package application

import (
	"path/filepath"
	"time"

	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// runLogger appends QC invocations to the run log. Logging is best
// effort: a failure to record never fails the QC run itself.
type runLogger struct {
	history domain.RunHistory
	git     domain.GitInfo
}

func (l runLogger) record(cfg domain.QCConfig, kind, target string, passed bool, issues int) {
	if l.history == nil || !cfg.HistoryEnabled() {
		return
	}

	entry := domain.RunEntry{
		Timestamp: time.Now().UTC(),
		Kind:      kind,
		Target:    target,
		Passed:    passed,
		Issues:    issues,
	}

	if l.git != nil {
		dir := filepath.Dir(target)
		if l.git.IsGitRepo(dir) {
			if hash, err := l.git.CommitHash(dir); err == nil {
				entry.CommitHash = hash
			}
		}
	}

	_ = l.history.Save(".", entry)
}
