package git

import (
	"context"
	"errors"
	"time"

	pexec "github.com/phasal/phasal-core/exec"
)

// ErrNotRepository indicates the working directory is not inside a git
// repository, or the git binary is unusable. Nothing has been written when
// this is returned.
var ErrNotRepository = errors.New("not a git repository")

// DefaultCommandTimeout bounds each git subprocess call. A hung git process
// (e.g. waiting on a credential helper) fails the operation instead of
// hanging the caller forever.
const DefaultCommandTimeout = 30 * time.Second

// Service provides git operations against a single repository root with
// explicit dependency injection. Each Service instance holds its own
// executor, enabling proper testing and avoiding global state.
type Service struct {
	executor pexec.CommandExecutor
	repoPath string
	timeout  time.Duration
}

// NewService creates a Service for the given repository path with the default
// real executor.
func NewService(repoPath string) *Service {
	return NewServiceWithExecutor(repoPath, pexec.NewRealExecutor())
}

// NewServiceWithExecutor creates a Service with a custom executor.
// This is primarily used for testing where a mock executor is needed.
func NewServiceWithExecutor(repoPath string, exec pexec.CommandExecutor) *Service {
	return &Service{
		executor: exec,
		repoPath: repoPath,
		timeout:  DefaultCommandTimeout,
	}
}

// SetCommandTimeout overrides the per-command timeout. Zero disables it.
func (s *Service) SetCommandTimeout(d time.Duration) {
	s.timeout = d
}

// commandContext derives the bounded context for one git invocation.
func (s *Service) commandContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
