package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ScottGunn22/dirchecker/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".dirchecker.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .dirchecker.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .dirchecker.yaml from dir. Returns DefaultConfig if the
// file does not exist; keys present in the file override the defaults.
func (l *YAMLLoader) Load(dir string) (domain.QCConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.QCConfig{}, err
	}

	// Unmarshal over the defaults so absent keys keep their built-in
	// values.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.QCConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.QCConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
