// Package store holds the latest uploaded dataset and its derived
// aggregate in memory. There is deliberately no disk persistence: the
// aggregate is recomputed from the uploaded workbook on every replacement
// and lost on restart.
package store

import (
	"sync"
	"time"

	"mizaniya/internal/core"
)

// Snapshot is one immutable (dataset, aggregate) pair. Version 0 is the
// empty pre-upload state so dashboards always have something to render.
type Snapshot struct {
	Version    uint64
	ReplacedAt time.Time
	Dataset    core.Dataset
	Aggregate  core.Aggregate
}

// Store swaps snapshots atomically under a read-write lock. Replacement is
// total: a new upload discards the previous dataset and aggregate together,
// never merging.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// New returns a store primed with the empty aggregate.
func New() *Store {
	return &Store{
		snap: Snapshot{Aggregate: core.Compute(core.Dataset{})},
	}
}

// Replace installs a new dataset and its aggregate, bumping the version.
func (s *Store) Replace(ds core.Dataset, agg core.Aggregate) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{
		Version:    s.snap.Version + 1,
		ReplacedAt: time.Now().UTC(),
		Dataset:    ds,
		Aggregate:  agg,
	}
	return s.snap
}

// Current returns the latest snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
