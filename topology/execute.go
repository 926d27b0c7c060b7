package topology

import (
	"context"
	"fmt"
	"os"

	"github.com/phasal/phasal-core/category"
	"github.com/phasal/phasal-core/logger"
	"github.com/phasal/phasal-core/metadata"
)

// PhaseResult reports one executed phase.
type PhaseResult struct {
	Phase      int
	CommitHash string
	FilesCount int
	SizeChange int
	Category   category.Category
}

// Initialize creates the project's metadata state. Idempotent.
func (t *Topologist) Initialize() error {
	return t.store.InitializeProject()
}

// BeginSession records how many phases the upcoming session plans to execute.
// Must be called after the first phase has opened the session, or it is a
// no-op.
func (t *Topologist) BeginSession(plannedPhases int) error {
	return t.store.SetPlannedPhaseCount(plannedPhases)
}

// ExecutePhase stages and commits the files of one phase from the supplied
// plan, then records the execution in the session history. The project must be
// initialized first. Phase numbers refer to the plan's own numbering.
//
// When size tracking is enabled the recorded size change is the commit's real
// insertion+deletion count; otherwise it is the phase's estimated size.
func (t *Topologist) ExecutePhase(ctx context.Context, phaseNumber int, phases []category.CommitPhase) (*PhaseResult, error) {
	var phase *category.CommitPhase
	for i := range phases {
		if phases[i].PhaseNumber == phaseNumber {
			phase = &phases[i]
			break
		}
	}
	if phase == nil {
		return nil, fmt.Errorf("phase %d: %w", phaseNumber, ErrPhaseNotFound)
	}

	config, err := t.store.LoadConfig()
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: run initialize first", metadata.ErrNotInitialized)
	}
	if err != nil {
		return nil, err
	}

	hash, err := t.git.StageAndCommitFiles(ctx, phase.Paths(), phase.CommitMessage)
	if err != nil {
		return nil, err
	}

	sizeChange := phase.EstimatedSize
	if config.SizeTracking {
		stats, err := t.git.GetDiffStats(ctx, hash)
		if err == nil && stats.Insertions+stats.Deletions > 0 {
			sizeChange = stats.Insertions + stats.Deletions
		}
	}

	if err := t.store.RecordPhaseExecution(phaseNumber, hash, len(phase.Files), sizeChange, phase.Category.String()); err != nil {
		return nil, err
	}

	logger.WithComponent("topology").Info("phase executed",
		"phase", phaseNumber, "hash", hash, "files", len(phase.Files))

	return &PhaseResult{
		Phase:      phaseNumber,
		CommitHash: hash,
		FilesCount: len(phase.Files),
		SizeChange: sizeChange,
		Category:   phase.Category,
	}, nil
}

// CompleteSession closes the current open session and computes its aggregate
// impact. Safe to call when no session is open.
func (t *Topologist) CompleteSession() error {
	return t.store.CompleteCurrentSession()
}

// Clean removes all project metadata and reverses the ignore-file edit.
// Commits already made are untouched.
func (t *Topologist) Clean() error {
	return t.store.CleanAllMetadata()
}
