// Package paths provides centralized path resolution for Phasal's own files.
//
// Project state (config, history, cache) lives inside the repository being
// organized and is owned by the metadata package. This package only resolves
// the per-user directories Phasal writes outside the repository — currently
// just log files.
//
// Resolution order:
//  1. If ~/.phasal/ exists → use legacy flat layout (all paths under ~/.phasal/)
//  2. If XDG_STATE_HOME is set → use XDG layout
//  3. Fresh install, no XDG vars → default to ~/.phasal/
package paths

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	mu       sync.Mutex
	resolved *resolvedPaths
)

type resolvedPaths struct {
	stateDir string
}

// resolve computes the path layout once and caches it.
func resolve() (*resolvedPaths, error) {
	mu.Lock()
	defer mu.Unlock()

	if resolved != nil {
		return resolved, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	legacyDir := filepath.Join(home, ".phasal")

	// 1. If ~/.phasal/ exists, use legacy layout
	if info, err := os.Stat(legacyDir); err == nil && info.IsDir() {
		resolved = &resolvedPaths{stateDir: legacyDir}
		return resolved, nil
	}

	// 2. Check XDG env vars
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		resolved = &resolvedPaths{stateDir: filepath.Join(xdgState, "phasal")}
		return resolved, nil
	}

	// 3. Fresh install, no XDG — default to legacy
	resolved = &resolvedPaths{stateDir: legacyDir}
	return resolved, nil
}

// StateDir returns the directory for runtime state and logs.
func StateDir() (string, error) {
	r, err := resolve()
	if err != nil {
		return "", err
	}
	return r.stateDir, nil
}

// LogsDir returns the directory for log files.
func LogsDir() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// Reset clears the cached path resolution. This is intended for testing only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	resolved = nil
}
