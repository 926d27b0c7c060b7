// Package topology orchestrates the full phased-commit workflow: analyze the
// repository, plan commit phases, execute them one at a time, and track
// progress in project-local metadata.
package topology

import (
	"errors"
	"fmt"

	"github.com/phasal/phasal-core/category"
	"github.com/phasal/phasal-core/git"
	"github.com/phasal/phasal-core/metadata"
	"github.com/phasal/phasal-core/plan"
)

// ErrPhaseNotFound indicates the requested phase number is not present in the
// supplied plan.
var ErrPhaseNotFound = errors.New("phase not found in plan")

// Topologist coordinates the categorizer, planner, git service, and metadata
// store for one project.
type Topologist struct {
	root        string
	categorizer *category.Categorizer
	planner     *plan.Planner
	git         *git.Service
	store       *metadata.Store
	strategy    string // options-file override, "" or "auto" means automatic
}

// New creates a Topologist for the project rooted at projectRoot, applying the
// project's options file (extra patterns, strategy override) when present.
func New(projectRoot string) (*Topologist, error) {
	return NewWithServices(projectRoot, git.NewService(projectRoot), metadata.NewStore(projectRoot))
}

// NewWithServices creates a Topologist with injected git and metadata
// services. This is primarily used for testing where a mock executor backs
// the git service.
func NewWithServices(projectRoot string, gitService *git.Service, store *metadata.Store) (*Topologist, error) {
	opts, err := metadata.LoadOptions(projectRoot)
	if err != nil {
		return nil, err
	}

	extra, err := extraPatterns(opts)
	if err != nil {
		return nil, err
	}

	strategy := ""
	if opts != nil {
		strategy = opts.Strategy
	}

	return &Topologist{
		root:        projectRoot,
		categorizer: category.NewCategorizerWithPatterns(extra),
		planner:     plan.NewPlanner(),
		git:         gitService,
		store:       store,
		strategy:    strategy,
	}, nil
}

// Store exposes the metadata store for direct state queries.
func (t *Topologist) Store() *metadata.Store {
	return t.store
}

// extraPatterns converts the options file's per-category pattern lists, keyed
// by category name, into the categorizer's keyed-by-Category form. An unknown
// category name is an error so typos in the options file surface immediately.
func extraPatterns(opts *metadata.Options) (map[category.Category][]string, error) {
	if opts == nil || len(opts.Patterns) == 0 {
		return nil, nil
	}

	extra := make(map[category.Category][]string, len(opts.Patterns))
	for name, patterns := range opts.Patterns {
		c, err := category.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern category in %s: %w", metadata.OptionsFileName, err)
		}
		extra[c] = append(extra[c], patterns...)
	}
	return extra, nil
}
