package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/phasal/phasal-core/logger"
)

// RepositoryStatus holds the uncommitted changes of the working tree, split
// into the two buckets planning cares about.
type RepositoryStatus struct {
	Untracked []string // status "??"
	Modified  []string // every other non-blank status code
}

// AllFiles returns untracked followed by modified paths.
func (s *RepositoryStatus) AllFiles() []string {
	all := make([]string, 0, len(s.Untracked)+len(s.Modified))
	all = append(all, s.Untracked...)
	all = append(all, s.Modified...)
	return all
}

// GetRepositoryStatus returns the uncommitted changes reported by a porcelain
// status query. Add/delete/rename/copy and conflict codes are all folded into
// "modified" for planning purposes. A non-zero exit (not a repository, or the
// binary missing) is a hard failure with no partial result.
func (s *Service) GetRepositoryStatus(ctx context.Context) (*RepositoryStatus, error) {
	ctx, cancel := s.commandContext(ctx)
	defer cancel()

	stdout, stderr, err := s.executor.Run(ctx, s.repoPath, "git", "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("%w: git status failed: %s", ErrNotRepository, strings.TrimSpace(string(stderr)))
	}

	status := &RepositoryStatus{}

	// Only trim trailing whitespace - leading space is significant in
	// porcelain format (" M file.go" means modified in worktree).
	for _, line := range strings.Split(strings.TrimRight(string(stdout), "\n\r\t "), "\n") {
		if len(line) < 4 {
			continue
		}

		code := line[:2]
		path := strings.TrimSpace(line[3:])

		if code == "??" {
			status.Untracked = append(status.Untracked, path)
		} else if strings.TrimSpace(code) != "" {
			status.Modified = append(status.Modified, path)
		}
	}

	logger.WithComponent("git").Debug("repository status",
		"untracked", len(status.Untracked), "modified", len(status.Modified))

	return status, nil
}

// IsUntracked re-queries a single path via the untracked-files listing.
func (s *Service) IsUntracked(ctx context.Context, path string) (bool, error) {
	ctx, cancel := s.commandContext(ctx)
	defer cancel()

	stdout, _, err := s.executor.Run(ctx, s.repoPath, "git", "ls-files", "--others", "--exclude-standard", path)
	if err != nil {
		return false, nil
	}
	return strings.TrimSpace(string(stdout)) != "", nil
}

// IsRepository reports whether the service's path is inside a git repository,
// via the exit status of a repository-root query.
func (s *Service) IsRepository(ctx context.Context) bool {
	ctx, cancel := s.commandContext(ctx)
	defer cancel()

	_, _, err := s.executor.Run(ctx, s.repoPath, "git", "rev-parse", "--git-dir")
	return err == nil
}
