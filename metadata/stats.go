package metadata

import (
	"os"
	"time"
)

// ProjectStats is a read-only summary across all recorded sessions.
type ProjectStats struct {
	ProjectID           string    `json:"project_id"`
	Created             time.Time `json:"created"`
	TotalSessions       int       `json:"total_sessions"`
	TotalPhases         int       `json:"total_phases"`
	TotalFilesProcessed int       `json:"total_files_processed"`
	CurrentSessionOpen  bool      `json:"current_session_active"`
}

// GetProjectStats aggregates the config and history into a summary. Returns
// ErrNotInitialized when the project has no config.
func (s *Store) GetProjectStats() (*ProjectStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.loadConfig()
	if os.IsNotExist(err) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}

	history, err := s.loadHistory()
	if err != nil {
		return nil, err
	}

	stats := &ProjectStats{
		ProjectID:     config.ProjectID,
		Created:       config.Created,
		TotalSessions: len(history.Sessions),
	}
	for _, session := range history.Sessions {
		stats.TotalPhases += len(session.Phases)
		for _, p := range session.Phases {
			stats.TotalFilesProcessed += p.FilesCount
		}
		if session.Completed == nil {
			stats.CurrentSessionOpen = true
		}
	}
	return stats, nil
}
