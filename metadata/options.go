package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OptionsFileName is the optional per-project options file at the project root.
const OptionsFileName = ".phasal.yaml"

// Options is the user-editable project options file. All fields are optional;
// pointer fields distinguish "unset" from an explicit false.
type Options struct {
	// Strategy overrides automatic strategy selection. Validated by the
	// planner, not here.
	Strategy string `yaml:"strategy,omitempty"`

	// SizeTracking enables per-commit diff stats in the history.
	SizeTracking *bool `yaml:"size_tracking,omitempty"`

	// AutoGitignore controls whether the state directory is added to the
	// project's ignore file on initialize.
	AutoGitignore *bool `yaml:"auto_gitignore,omitempty"`

	// Patterns adds extra path patterns per category name, merged after the
	// built-in rules of the same category.
	Patterns map[string][]string `yaml:"patterns,omitempty"`
}

// LoadOptions reads the options file from the project root. A missing file is
// not an error; it returns (nil, nil).
func LoadOptions(root string) (*Options, error) {
	path := filepath.Join(root, OptionsFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", OptionsFileName, err)
	}
	return &opts, nil
}
