package domain

import "fmt"

// QCConfig holds tool configuration loaded from .dirchecker.yaml.
// Zero values are filled from DefaultConfig by the loader.
type QCConfig struct {
	// ProfileMinKB is the minimum size of the Attack Surface Profile
	// spreadsheet, in KB (1 KB = 1024 bytes). The file must be
	// strictly larger than this to pass.
	ProfileMinKB int `yaml:"profile_min_kb" json:"profile_min_kb"`

	// ExpectedStatus is the literal the Report Status field must
	// equal (case-insensitive).
	ExpectedStatus string `yaml:"expected_status" json:"expected_status"`

	// History toggles the QC run log.
	History *bool `yaml:"history,omitempty" json:"history,omitempty"`
}

// DefaultConfig returns the built-in configuration used when no
// .dirchecker.yaml is present.
func DefaultConfig() QCConfig {
	on := true
	return QCConfig{
		ProfileMinKB:   25,
		ExpectedStatus: "Preliminary Report",
		History:        &on,
	}
}

// HistoryEnabled reports whether run logging is on (default true).
func (c QCConfig) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// Validate catches typos in user-supplied config before it is merged.
func (c QCConfig) Validate() error {
	if c.ProfileMinKB < 0 {
		return fmt.Errorf("profile_min_kb must not be negative, got %d", c.ProfileMinKB)
	}
	return nil
}
