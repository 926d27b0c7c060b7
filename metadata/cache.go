package metadata

import (
	"os"
	"path/filepath"
	"time"

	"github.com/phasal/phasal-core/logger"
)

// cacheTTL is how long a cached analysis stays valid.
const cacheTTL = time.Hour

// AnalysisCache is the ephemeral record of one analysis pass, keyed by a
// caller-supplied repository fingerprint.
type AnalysisCache struct {
	CachedAt       time.Time `json:"cached_at"`
	RepositoryHash string    `json:"repository_hash"`
	FileCount      int       `json:"file_count"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// CacheAnalysis stores an analysis record with a 1-hour expiry.
func (s *Store) CacheAnalysis(fileCount int, repositoryHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	cache := AnalysisCache{
		CachedAt:       now,
		RepositoryHash: repositoryHash,
		FileCount:      fileCount,
		ExpiresAt:      now.Add(cacheTTL),
	}
	return s.writeJSON(cacheFile, cache)
}

// LoadCachedAnalysis returns the cached analysis if still valid. An expired
// entry is deleted on the read that discovers it and never returned.
func (s *Store) LoadCachedAnalysis() (*AnalysisCache, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cache AnalysisCache
	err := s.readJSON(cacheFile, &cache)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if time.Now().UTC().After(cache.ExpiresAt) {
		if err := os.Remove(filepath.Join(s.dir, cacheFile)); err != nil && !os.IsNotExist(err) {
			logger.WithComponent("metadata").Warn("failed to remove expired cache", "error", err)
		}
		return nil, nil
	}

	return &cache, nil
}
