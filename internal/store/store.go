// Package store holds the once-loaded, immutable posting set.
package store

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jobfeedhq/jobfeed/internal/model"
)

// Store is the single point of truth for the loaded record set. It is
// populated at most once per process; after a successful Load the jobs
// are read-only and safe to share without locking.
type Store struct {
	fetcher model.Fetcher

	group singleflight.Group

	mu     sync.RWMutex
	jobs   []model.Job
	loaded bool
}

// New creates an empty store backed by the given fetcher.
func New(fetcher model.Fetcher) *Store {
	return &Store{fetcher: fetcher}
}

// Load populates the store from the fetcher if it is still empty. Concurrent
// callers share a single in-flight fetch and all observe the same result.
// On failure the store stays empty, so a later Load retries the fetch.
func (s *Store) Load(ctx context.Context) error {
	if s.Loaded() {
		return nil
	}

	_, err, _ := s.group.Do("load", func() (any, error) {
		// A previous flight may have completed while we waited.
		if s.Loaded() {
			return nil, nil
		}

		jobs, err := s.fetcher.FetchJobs(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.jobs = jobs
		s.loaded = true
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

// All returns the records in load order. Callers must not mutate the slice.
func (s *Store) All() []model.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs
}

// Loaded reports whether the empty→loaded transition has happened.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
