package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/phasal/phasal-core/logger"
)

// commitTrailer is appended to every phase commit message.
const commitTrailer = "\n\n🤖 Generated with Phasal\n\nCo-Authored-By: Phasal <noreply@phasal.dev>"

// StageFiles stages the given paths. An empty list is a no-op.
func (s *Service) StageFiles(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	ctx, cancel := s.commandContext(ctx)
	defer cancel()

	args := append([]string{"add"}, paths...)
	if output, err := s.executor.CombinedOutput(ctx, s.repoPath, "git", args...); err != nil {
		return fmt.Errorf("git add failed: %s - %w", strings.TrimSpace(string(output)), err)
	}

	logger.WithComponent("git").Debug("staged files", "count", len(paths))
	return nil
}

// CommitStagedFiles commits whatever is staged using the given message plus
// the attribution trailer, then resolves and returns the new commit hash.
func (s *Service) CommitStagedFiles(ctx context.Context, message string) (string, error) {
	cctx, cancel := s.commandContext(ctx)
	defer cancel()

	fullMessage := message + commitTrailer
	if output, err := s.executor.CombinedOutput(cctx, s.repoPath, "git", "commit", "-m", fullMessage); err != nil {
		return "", fmt.Errorf("git commit failed: %s - %w", strings.TrimSpace(string(output)), err)
	}

	hash, err := s.LatestCommitHash(ctx)
	if err != nil {
		return "", err
	}

	logger.WithComponent("git").Info("commit created", "hash", hash)
	return hash, nil
}

// StageAndCommitFiles stages the paths and commits them in one step. Staging
// success followed by commit failure leaves the tree staged; there is no
// rollback.
func (s *Service) StageAndCommitFiles(ctx context.Context, paths []string, message string) (string, error) {
	if err := s.StageFiles(ctx, paths); err != nil {
		return "", err
	}
	return s.CommitStagedFiles(ctx, message)
}

// LatestCommitHash resolves HEAD to a commit hash.
func (s *Service) LatestCommitHash(ctx context.Context) (string, error) {
	ctx, cancel := s.commandContext(ctx)
	defer cancel()

	stdout, stderr, err := s.executor.Run(ctx, s.repoPath, "git", "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve commit hash: %s - %w", strings.TrimSpace(string(stderr)), err)
	}
	return strings.TrimSpace(string(stdout)), nil
}
