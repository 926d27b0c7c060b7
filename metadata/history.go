package metadata

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/phasal/phasal-core/logger"
)

// SessionHistory is one bounded sequence of phase executions. At most one
// session per project is open (Completed unset) at any time.
type SessionHistory struct {
	SessionID          string           `json:"session_id"`
	Started            time.Time        `json:"started"`
	Completed          *time.Time       `json:"completed,omitempty"`
	Phases             []PhaseExecution `json:"phases"`
	TotalPlannedPhases *int             `json:"total_planned_phases,omitempty"`
	TotalImpact        *SessionImpact   `json:"total_impact,omitempty"`
}

// PhaseExecution records one executed phase. Append-only within a session.
type PhaseExecution struct {
	Phase      int       `json:"phase"`
	CommitHash string    `json:"commit_hash"`
	FilesCount int       `json:"files_count"`
	SizeChange int       `json:"size_change"`
	Category   string    `json:"category"`
	ExecutedAt time.Time `json:"executed_at"`
}

// SessionImpact aggregates a completed session's phases. FilesModified and
// NetDeletions stay zero: the path-only input cannot distinguish added from
// modified, and deletions are folded into the size change.
type SessionImpact struct {
	Commits       int `json:"commits"`
	FilesAdded    int `json:"files_added"`
	FilesModified int `json:"files_modified"`
	NetInsertions int `json:"net_insertions"`
	NetDeletions  int `json:"net_deletions"`
}

type historyData struct {
	Sessions []SessionHistory `json:"sessions"`
}

// RecordPhaseExecution appends a PhaseExecution to the current open session,
// opening a new session first if none is open or the latest is already
// completed, then updates the completed-phases set in the config. This is the
// sole mutator during execution.
func (s *Store) RecordPhaseExecution(phase int, commitHash string, filesCount, sizeChange int, categoryName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory()
	if err != nil {
		return err
	}

	last := len(history.Sessions) - 1
	if last < 0 || history.Sessions[last].Completed != nil {
		session := SessionHistory{
			SessionID: uuid.NewString(),
			Started:   time.Now().UTC(),
			Phases:    []PhaseExecution{},
		}
		history.Sessions = append(history.Sessions, session)
		last = len(history.Sessions) - 1
		logger.WithSession(session.SessionID).Info("commit session opened")
	}

	history.Sessions[last].Phases = append(history.Sessions[last].Phases, PhaseExecution{
		Phase:      phase,
		CommitHash: commitHash,
		FilesCount: filesCount,
		SizeChange: sizeChange,
		Category:   categoryName,
		ExecutedAt: time.Now().UTC(),
	})

	if err := s.markPhaseCompleted(phase); err != nil {
		return err
	}
	return s.writeJSON(historyFile, history)
}

// SetPlannedPhaseCount records how many phases the current open session is
// expected to execute. No-op when no session is open.
func (s *Store) SetPlannedPhaseCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory()
	if err != nil {
		return err
	}

	last := len(history.Sessions) - 1
	if last < 0 || history.Sessions[last].Completed != nil {
		return nil
	}
	history.Sessions[last].TotalPlannedPhases = &n
	return s.writeJSON(historyFile, history)
}

// CurrentSession returns the most recent open session, or nil when every
// session is completed (or none exists).
func (s *Store) CurrentSession() (*SessionHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory()
	if err != nil {
		return nil, err
	}

	for i := len(history.Sessions) - 1; i >= 0; i-- {
		if history.Sessions[i].Completed == nil {
			session := history.Sessions[i]
			return &session, nil
		}
	}
	return nil, nil
}

// CompleteCurrentSession sets the completion time on the latest open session
// and computes its aggregate impact. Idempotent once completion is set.
func (s *Store) CompleteCurrentSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory()
	if err != nil {
		return err
	}

	last := len(history.Sessions) - 1
	if last < 0 || history.Sessions[last].Completed != nil {
		return nil
	}

	session := &history.Sessions[last]
	now := time.Now().UTC()
	session.Completed = &now

	totalFiles := 0
	totalSize := 0
	for _, p := range session.Phases {
		totalFiles += p.FilesCount
		totalSize += p.SizeChange
	}
	session.TotalImpact = &SessionImpact{
		Commits:       len(session.Phases),
		FilesAdded:    totalFiles,
		NetInsertions: totalSize,
	}

	logger.WithSession(session.SessionID).Info("commit session completed",
		"commits", len(session.Phases), "files", totalFiles)

	return s.writeJSON(historyFile, history)
}

// loadHistory reads the history file, tolerating a missing file. Caller must
// hold mu.
func (s *Store) loadHistory() (historyData, error) {
	var history historyData
	err := s.readJSON(historyFile, &history)
	if os.IsNotExist(err) {
		return historyData{Sessions: []SessionHistory{}}, nil
	}
	if err != nil {
		return history, err
	}
	if history.Sessions == nil {
		history.Sessions = []SessionHistory{}
	}
	return history, nil
}

func (s *Store) historyPath() string {
	return filepath.Join(s.dir, historyFile)
}
