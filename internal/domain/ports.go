package domain

// TreeScanner captures an on-disk engagement directory as a snapshot
// the structure checker can evaluate without touching the filesystem.
type TreeScanner interface {
	Scan(basePath string) (*TreeSnapshot, error)
}

// PageReader extracts the first page of a PDF report. Implementations
// must release the underlying file before returning, even on error.
type PageReader interface {
	ReadFirstPage(path string) (*PageContent, error)
}

// ConfigLoader reads tool configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (QCConfig, error)
}

// RunHistory persists QC run entries.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// GitInfo answers version-control questions about a target path.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
