package metadata

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	gitignoreComment = "# Phasal state"
	gitignoreEntry   = StateDirName + "/"
)

// ensureGitignoreEntry appends the state directory to the project's ignore
// file if not already present. Caller must hold mu.
func (s *Store) ensureGitignoreEntry() error {
	path := filepath.Join(s.root, ".gitignore")

	content := ""
	data, err := os.ReadFile(path)
	if err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		return err
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == gitignoreEntry || trimmed == StateDirName {
			return nil
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += "\n" + gitignoreComment + "\n" + gitignoreEntry + "\n"

	return os.WriteFile(path, []byte(content), 0644)
}

// removeGitignoreEntry reverses the ignore-file edit, preserving all
// unrelated lines. The file itself is removed when nothing else remains.
// Caller must hold mu.
func (s *Store) removeGitignoreEntry() error {
	path := filepath.Join(s.root, ".gitignore")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var kept []string
	for _, line := range strings.Split(string(data), "\n") {
		switch strings.TrimSpace(line) {
		case gitignoreEntry, StateDirName, gitignoreComment:
			continue
		}
		kept = append(kept, line)
	}

	// Drop trailing empty lines left by the removal
	for len(kept) > 0 && kept[len(kept)-1] == "" {
		kept = kept[:len(kept)-1]
	}

	if len(kept) == 0 {
		return os.Remove(path)
	}
	return os.WriteFile(path, []byte(strings.Join(kept, "\n")+"\n"), 0644)
}
