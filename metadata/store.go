// Package metadata persists Phasal's project-local state: project
// configuration, commit-session history, and a short-TTL analysis cache.
//
// All state lives in a hidden directory under the project root, owned by a
// Store instance passed into every operation — no package-level globals.
// Files are written with write-temp-then-rename so a crash mid-write cannot
// leave a half-written state file behind.
package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// StateDirName is the hidden state directory created under the project root.
	StateDirName = ".phasal"

	configFile  = "config.json"
	historyFile = "commit_history.json"
	cacheFile   = "analysis_cache.json"
)

// ErrNotInitialized indicates the project has no state directory or config.
var ErrNotInitialized = errors.New("project not initialized")

// ErrCorruptState indicates a state file exists but cannot be parsed. Callers
// can suggest re-initialization when they see this.
var ErrCorruptState = errors.New("corrupt metadata state")

// Store owns the state directory of one project.
type Store struct {
	root string // project root
	dir  string // state directory
	mu   sync.Mutex
}

// NewStore returns a Store for the project rooted at projectRoot.
func NewStore(projectRoot string) *Store {
	return &Store{
		root: projectRoot,
		dir:  filepath.Join(projectRoot, StateDirName),
	}
}

// Dir returns the state directory path.
func (s *Store) Dir() string {
	return s.dir
}

// IsInitialized reports whether the state directory and config exist.
func (s *Store) IsInitialized() bool {
	if _, err := os.Stat(filepath.Join(s.dir, configFile)); err != nil {
		return false
	}
	return true
}

// writeJSON marshals v and atomically replaces the named state file by
// writing a temp file in the same directory and renaming it into place.
func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, filepath.Join(s.dir, name))
}

// readJSON reads and unmarshals the named state file. Parse failures are
// reported as ErrCorruptState so callers can distinguish them from missing
// state.
func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptState, name, err)
	}
	return nil
}

// CleanAllMetadata removes the state directory recursively and reverses the
// ignore-file edit, preserving unrelated lines.
func (s *Store) CleanAllMetadata() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.dir); err != nil {
		return err
	}
	return s.removeGitignoreEntry()
}
