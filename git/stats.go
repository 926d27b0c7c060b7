package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/phasal/phasal-core/logger"
)

// DiffStats summarizes one commit's stat line.
type DiffStats struct {
	FilesChanged int
	Insertions   int
	Deletions    int
}

// RepositoryStats holds repository-wide counters for size tracking.
type RepositoryStats struct {
	TotalFiles   int // tracked + untracked (excluding ignored)
	TotalCommits int
}

// GetDiffStats parses the human-readable summary line of a stat-only diff of
// one commit, e.g. " 3 files changed, 150 insertions(+), 20 deletions(-)".
// Absent clauses default to zero; a failed query yields zero stats, not an
// error, since the numbers are only used for size tracking.
func (s *Service) GetDiffStats(ctx context.Context, commitHash string) (DiffStats, error) {
	ctx, cancel := s.commandContext(ctx)
	defer cancel()

	stdout, _, err := s.executor.Run(ctx, s.repoPath, "git", "show", "--stat", "--format=", commitHash)
	if err != nil {
		logger.WithComponent("git").Warn("git show --stat failed", "hash", commitHash, "error", err)
		return DiffStats{}, nil
	}

	var stats DiffStats
	for _, line := range strings.Split(string(stdout), "\n") {
		if !strings.Contains(line, "changed") {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			n := leadingInt(part)
			switch {
			case strings.Contains(part, "file") && strings.Contains(part, "changed"):
				stats.FilesChanged = n
			case strings.Contains(part, "insertion"):
				stats.Insertions = n
			case strings.Contains(part, "deletion"):
				stats.Deletions = n
			}
		}
		break
	}

	return stats, nil
}

// GetRepositoryStats returns tracked-file and commit counts.
func (s *Service) GetRepositoryStats(ctx context.Context) (RepositoryStats, error) {
	var stats RepositoryStats

	lsCtx, cancel := s.commandContext(ctx)
	stdout, _, err := s.executor.Run(lsCtx, s.repoPath, "git", "ls-files", "--cached", "--others", "--exclude-standard")
	cancel()
	if err == nil {
		for _, line := range strings.Split(string(stdout), "\n") {
			if strings.TrimSpace(line) != "" {
				stats.TotalFiles++
			}
		}
	}

	countCtx, cancel := s.commandContext(ctx)
	stdout, _, err = s.executor.Run(countCtx, s.repoPath, "git", "rev-list", "--count", "HEAD")
	cancel()
	if err == nil {
		if n, convErr := strconv.Atoi(strings.TrimSpace(string(stdout))); convErr == nil {
			stats.TotalCommits = n
		}
	}

	return stats, nil
}

// leadingInt parses the integer at the start of a clause like
// "150 insertions(+)". Returns 0 when the clause has no leading number.
func leadingInt(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}
