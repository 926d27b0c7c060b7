package git

import (
	"os"
	"path/filepath"
)

// LargeFileThreshold is the size in bytes above which a file is flagged as
// large. Advisory only; large files are never blocked.
const LargeFileThreshold = 1_000_000

// ValidationResult classifies paths ahead of a commit.
type ValidationResult struct {
	Existing []string
	Missing  []string
	Large    []string
	Valid    bool // true when no files are missing
}

// ValidateFilesForCommit checks each path against the filesystem: existing vs
// missing, plus a large-file flag. The result is advisory and never blocks
// execution.
func (s *Service) ValidateFilesForCommit(paths []string) ValidationResult {
	var result ValidationResult

	for _, path := range paths {
		full := filepath.Join(s.repoPath, path)
		info, err := os.Stat(full)
		if err != nil {
			result.Missing = append(result.Missing, path)
			continue
		}
		result.Existing = append(result.Existing, path)
		if info.Size() > LargeFileThreshold {
			result.Large = append(result.Large, path)
		}
	}

	result.Valid = len(result.Missing) == 0
	return result
}
