// Package git provides git context detection using go-git. The detected
// branch and commit are shown in the status output and the timer header;
// nothing is persisted.
package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/xvierd/focusnest/internal/ports"
)

// Detector implements the ports.GitDetector interface using go-git.
type Detector struct{}

var _ ports.GitDetector = (*Detector)(nil)

// NewDetector creates a git detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the branch, short commit hash and dirty flag for the
// repository containing dir.
func (d *Detector) Detect(dir string) (*ports.GitInfo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("git repository not found: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	branch := head.Name().Short()
	if branch == "HEAD" {
		branch = "detached"
	}

	commit := head.Hash().String()
	if len(commit) > 7 {
		commit = commit[:7]
	}

	info := &ports.GitInfo{Branch: branch, Commit: commit}

	// Worktree status can fail on bare repositories; the branch and commit
	// alone are still useful then.
	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			info.Dirty = !status.IsClean()
		}
	}

	return info, nil
}
