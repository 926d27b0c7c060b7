package topology

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/phasal/phasal-core/category"
	"github.com/phasal/phasal-core/git"
	"github.com/phasal/phasal-core/logger"
	"github.com/phasal/phasal-core/plan"
)

// RepositorySummary holds the working-tree counters surfaced alongside an
// analysis.
type RepositorySummary struct {
	TotalFiles         int
	UntrackedFiles     int
	ModifiedFiles      int
	EstimatedTotalSize int
	SuggestedPhases    int
}

// Analysis is the complete output of one repository analysis pass: the
// categorized file set, the default phase sequence, and working-tree counters.
// CacheHit reports whether an unexpired cached analysis with the same
// repository fingerprint existed when this pass ran.
type Analysis struct {
	Categorized category.Analysis
	DefaultPlan []category.CommitPhase
	Repository  RepositorySummary
	CacheHit    bool
}

// AnalyzeRepository queries the working tree for uncommitted changes,
// categorizes them, and generates the default commit plan. The analysis is
// always computed fresh; the metadata cache only tracks whether the file set
// changed since the previous pass.
func (t *Topologist) AnalyzeRepository(ctx context.Context) (*Analysis, error) {
	if !t.git.IsRepository(ctx) {
		return nil, fmt.Errorf("%s: %w", t.root, git.ErrNotRepository)
	}

	status, err := t.git.GetRepositoryStatus(ctx)
	if err != nil {
		return nil, err
	}

	paths := status.AllFiles()
	categorized := t.categorizer.AnalyzeFiles(paths)

	analysis := &Analysis{
		Categorized: categorized,
		DefaultPlan: t.categorizer.GenerateCommitPlan(categorized),
		Repository: RepositorySummary{
			TotalFiles:         len(paths),
			UntrackedFiles:     len(status.Untracked),
			ModifiedFiles:      len(status.Modified),
			EstimatedTotalSize: categorized.EstimatedTotalSize,
			SuggestedPhases:    categorized.SuggestedPhases,
		},
	}

	fingerprint := repositoryFingerprint(paths)
	if t.store.IsInitialized() {
		cached, err := t.store.LoadCachedAnalysis()
		if err != nil {
			logger.WithComponent("topology").Warn("failed to read analysis cache", "error", err)
		}
		analysis.CacheHit = cached != nil && cached.RepositoryHash == fingerprint

		if err := t.store.CacheAnalysis(len(paths), fingerprint); err != nil {
			logger.WithComponent("topology").Warn("failed to write analysis cache", "error", err)
		}
	}

	logger.WithComponent("topology").Info("repository analyzed",
		"files", len(paths), "phases", len(analysis.DefaultPlan), "cacheHit", analysis.CacheHit)

	return analysis, nil
}

// PlanCommits generates a commit plan for an analysis. The strategy comes
// from, in order: the persisted project config (when initialized), the
// options-file override, or automatic selection from the analysis shape.
func (t *Topologist) PlanCommits(analysis *Analysis) (plan.Plan, error) {
	name := t.strategy
	if config, err := t.store.LoadConfig(); err == nil {
		name = config.CommitStrategy
	} else if !os.IsNotExist(err) {
		return plan.Plan{}, err
	}

	if name == "" || name == "auto" {
		return t.planner.GeneratePlan(analysis.Categorized), nil
	}

	strategy, err := plan.ParseStrategy(name)
	if err != nil {
		return plan.Plan{}, err
	}
	return t.planner.GenerateWithStrategy(analysis.Categorized, strategy), nil
}

// repositoryFingerprint hashes the sorted path set so the same uncommitted
// files always fingerprint identically, regardless of status ordering.
func repositoryFingerprint(paths []string) string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	sum := sha256.Sum256([]byte(strings.Join(sorted, "\n")))
	return hex.EncodeToString(sum[:])
}
