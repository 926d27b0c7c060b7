package topology

import (
	"context"

	"github.com/phasal/phasal-core/git"
	"github.com/phasal/phasal-core/metadata"
)

// Status is a point-in-time view of the project's commit-tracking state.
type Status struct {
	Initialized    bool
	Config         *metadata.ProjectConfig
	CurrentSession *metadata.SessionHistory
	Stats          *metadata.ProjectStats
	Repository     git.RepositoryStats
}

// GetStatus reports the project's initialization state, config, open session,
// aggregate stats, and repository-wide counters. An uninitialized project
// yields a Status with only Initialized and Repository set.
func (t *Topologist) GetStatus(ctx context.Context) (*Status, error) {
	status := &Status{}

	if t.git.IsRepository(ctx) {
		repoStats, err := t.git.GetRepositoryStats(ctx)
		if err != nil {
			return nil, err
		}
		status.Repository = repoStats
	}

	if !t.store.IsInitialized() {
		return status, nil
	}
	status.Initialized = true

	config, err := t.store.LoadConfig()
	if err != nil {
		return nil, err
	}
	status.Config = &config

	session, err := t.store.CurrentSession()
	if err != nil {
		return nil, err
	}
	status.CurrentSession = session

	stats, err := t.store.GetProjectStats()
	if err != nil {
		return nil, err
	}
	status.Stats = stats

	return status, nil
}
