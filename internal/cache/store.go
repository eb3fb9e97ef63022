// Package cache holds the in-memory job snapshot served by the API, with
// best-effort persistence so a restarted process serves stale data instead of
// an empty list.
package cache

import (
	"sync"

	"go.uber.org/zap"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

// Store guards one records snapshot plus two flags. The lock is held only for
// in-memory swaps and copies, never across disk or network I/O.
type Store struct {
	mu         sync.RWMutex
	records    []jobs.Record
	loaded     bool
	refreshing bool

	maxJobs int
	path    string
	logger  *zap.Logger
}

// Snapshot is a point-in-time copy of the store's state.
type Snapshot struct {
	Records    []jobs.Record
	Loaded     bool
	Refreshing bool
}

// NewStore creates an empty store persisting to path. A maxJobs of zero or
// less disables truncation.
func NewStore(path string, maxJobs int, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{maxJobs: maxJobs, path: path, logger: logger}
}

// Replace dedupes, sorts, and truncates records, swaps them in, and persists
// the result. markLoaded marks the first full refresh as complete; it is
// never un-set by later calls. Persistence failure is logged, not returned.
func (s *Store) Replace(records []jobs.Record, markLoaded bool) {
	deduped := jobs.DedupeAndSort(records, s.maxJobs)

	s.mu.Lock()
	s.records = deduped
	if markLoaded {
		s.loaded = true
	}
	s.mu.Unlock()

	if s.path == "" {
		return
	}
	if err := writeCacheFile(s.path, deduped); err != nil {
		s.logger.Error("cache persist failed", zap.String("path", s.path), zap.Error(err))
	}
}

// Read returns a copy of the current snapshot. Callers may hold or mutate the
// returned slice freely.
func (s *Store) Read() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]jobs.Record, len(s.records))
	copy(records, s.records)
	return Snapshot{Records: records, Loaded: s.loaded, Refreshing: s.refreshing}
}

// Len reports the current snapshot size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// SetRefreshing flips the refresh-in-progress flag.
func (s *Store) SetRefreshing(v bool) {
	s.mu.Lock()
	s.refreshing = v
	s.mu.Unlock()
}

// Hydrate loads the persisted snapshot from disk, if present and well formed,
// and marks the store loaded so stale data is servable immediately. Call once
// at process start, before any network activity. A missing or malformed file
// leaves the store empty and unloaded without error.
func (s *Store) Hydrate() {
	if s.path == "" {
		return
	}
	records, err := readCacheFile(s.path)
	if err != nil {
		s.logger.Warn("cache hydrate skipped", zap.String("path", s.path), zap.Error(err))
		return
	}
	deduped := jobs.DedupeAndSort(records, s.maxJobs)

	s.mu.Lock()
	s.records = deduped
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("cache hydrated from disk", zap.Int("jobs", len(deduped)))
}
