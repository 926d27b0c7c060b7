package metadata

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/phasal/phasal-core/logger"
)

// configVersion is the current schema version written to config.json.
const configVersion = "1.0"

// ProjectConfig is the persisted per-project configuration. Created on
// initialize, updated after each executed phase, removed only by Clean.
type ProjectConfig struct {
	Version         string    `json:"version"`
	ProjectID       string    `json:"project_id"`
	Created         time.Time `json:"created"`
	CommitStrategy  string    `json:"commit_strategy"`
	SizeTracking    bool      `json:"size_tracking"`
	AutoGitignore   bool      `json:"auto_gitignore"`
	PhasesCompleted []int     `json:"phases_completed"`
}

// InitializeProject creates the state directory, config, and empty history if
// absent. It is idempotent: repeated calls preserve the project identity and
// history. When the config's auto-gitignore flag is set, the state directory
// is appended to the project's ignore file (once).
//
// A `.phasal.yaml` options file at the project root, if present, seeds the
// strategy and feature flags of a fresh config.
func (s *Store) InitializeProject() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	config, err := s.loadConfig()
	if os.IsNotExist(err) {
		opts, optErr := LoadOptions(s.root)
		if optErr != nil {
			return optErr
		}
		config = newProjectConfig(opts)
		if err := s.writeJSON(configFile, config); err != nil {
			return err
		}
		logger.WithComponent("metadata").Info("project initialized",
			"projectID", config.ProjectID, "strategy", config.CommitStrategy)
	} else if err != nil {
		return err
	}

	// Ensure an empty history structure exists
	if _, err := os.Stat(s.historyPath()); os.IsNotExist(err) {
		if err := s.writeJSON(historyFile, historyData{Sessions: []SessionHistory{}}); err != nil {
			return err
		}
	}

	if config.AutoGitignore {
		if err := s.ensureGitignoreEntry(); err != nil {
			return err
		}
	}

	return nil
}

func newProjectConfig(opts *Options) ProjectConfig {
	config := ProjectConfig{
		Version:         configVersion,
		ProjectID:       uuid.NewString(),
		Created:         time.Now().UTC(),
		CommitStrategy:  "auto",
		SizeTracking:    true,
		AutoGitignore:   true,
		PhasesCompleted: []int{},
	}
	if opts != nil {
		if opts.Strategy != "" {
			config.CommitStrategy = opts.Strategy
		}
		if opts.SizeTracking != nil {
			config.SizeTracking = *opts.SizeTracking
		}
		if opts.AutoGitignore != nil {
			config.AutoGitignore = *opts.AutoGitignore
		}
	}
	return config
}

// LoadConfig reads the project config. Returns ErrNotInitialized when no
// config exists.
func (s *Store) LoadConfig() (ProjectConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadConfig()
}

// loadConfig reads the config without locking. Caller must hold mu or accept
// the race. os.IsNotExist errors pass through for initialization probing.
func (s *Store) loadConfig() (ProjectConfig, error) {
	var config ProjectConfig
	err := s.readJSON(configFile, &config)
	if os.IsNotExist(err) {
		return config, err
	}
	if err != nil {
		return config, err
	}
	return config, nil
}

// markPhaseCompleted adds a phase number to the completed set (dedup + sort)
// and persists the config. Caller must hold mu.
func (s *Store) markPhaseCompleted(phase int) error {
	config, err := s.loadConfig()
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: run initialize first", ErrNotInitialized)
	}
	if err != nil {
		return err
	}

	for _, done := range config.PhasesCompleted {
		if done == phase {
			return nil
		}
	}
	config.PhasesCompleted = append(config.PhasesCompleted, phase)
	sort.Ints(config.PhasesCompleted)
	return s.writeJSON(configFile, config)
}
