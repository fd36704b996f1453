package jobs

import (
	"errors"
	"sync"

	"github.com/jfmartel/boampwatch/internal/records"
)

// ErrNotFound is returned for unknown job ids.
var ErrNotFound = errors.New("job not found")

// ErrNotCompleted is returned when results are requested from a job that has
// not reached the completed state.
var ErrNotCompleted = errors.New("job not completed")

// Store is the process-wide registry of jobs, keyed by job id. The runner
// for a given id is the sole writer; progress pollers read concurrently and
// always observe a complete, coherent snapshot.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewStore creates an empty job store.
func NewStore() *Store {
	return &Store{jobs: make(map[string]*Job)}
}

// Put registers a new job.
func (s *Store) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job.clone()
}

// Get returns a snapshot of the job, or ErrNotFound.
func (s *Store) Get(id string) (*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return job.clone(), nil
}

// Update applies fn to the stored job under the write lock. Terminal jobs
// are immutable; updates against them are dropped.
func (s *Store) Update(id string, fn func(*Job)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok || job.Status.Terminal() {
		return
	}
	fn(job)
}

// Results returns the full per-record table for a completed job.
func (s *Store) Results(id string) ([]records.Record, error) {
	job, err := s.completed(id)
	if err != nil {
		return nil, err
	}
	return job.Results, nil
}

// Summary returns the condensed summary table for a completed job.
func (s *Store) Summary(id string) ([]SummaryRow, error) {
	job, err := s.completed(id)
	if err != nil {
		return nil, err
	}
	return job.Summary, nil
}

func (s *Store) completed(id string) (*Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if job.Status != StatusCompleted {
		return nil, ErrNotCompleted
	}
	return job, nil
}
