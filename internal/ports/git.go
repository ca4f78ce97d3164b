package ports

// GitInfo describes the repository context of the working directory.
// It is display-only and never persisted.
type GitInfo struct {
	Branch string
	Commit string
	Dirty  bool
}

// GitDetector inspects the working directory for git context.
type GitDetector interface {
	// Detect returns the git context for dir, or an error when dir is not
	// inside a repository.
	Detect(dir string) (*GitInfo, error)
}
