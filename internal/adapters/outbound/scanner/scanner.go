package scanner

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// TreeScanner implements domain.TreeScanner by walking the filesystem.
type TreeScanner struct{}

func New() *TreeScanner {
	return &TreeScanner{}
}

// Scan captures the engagement directory as a snapshot: every
// directory and file (with size) under basePath, keyed by slash
// relative path. A missing or non-directory base returns a snapshot
// with the corresponding flags cleared rather than an error, so the
// checker can report it.
func (s *TreeScanner) Scan(basePath string) (*domain.TreeSnapshot, error) {
	snap := &domain.TreeSnapshot{
		BasePath: basePath,
		Dirs:     make(map[string]bool),
		Files:    make(map[string]int64),
	}

	info, err := os.Stat(basePath)
	if errors.Is(err, os.ErrNotExist) {
		return snap, nil
	}
	if err != nil {
		return nil, err
	}

	snap.Exists = true
	if !info.IsDir() {
		return snap, nil
	}
	snap.IsDir = true

	err = filepath.WalkDir(basePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are treated as absent.
			return nil
		}
		rel, relErr := filepath.Rel(basePath, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			snap.Dirs[rel] = true
			return nil
		}
		fi, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		snap.Files[rel] = fi.Size()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}
