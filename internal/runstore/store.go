// Package runstore persists completed scenario runs. The store owns the
// retention policy (most-recent-first, capped at MaxRuns) and delegates
// durability to an injected backend, so the eviction behavior is testable
// without a real storage medium.
package runstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/estateplan/epgo/internal/domain"
)

// MaxRuns caps retained runs. Older runs beyond the cap are discarded
// permanently on save; this is intentional, not an error.
const MaxRuns = 10

// Backend loads and persists the full run list. Implementations replace the
// list wholesale on Persist, mirroring single-key storage semantics.
type Backend interface {
	Load() ([]domain.ScenarioRun, error)
	Persist(runs []domain.ScenarioRun) error
}

// Store is a single-writer run store. It keeps the run list in memory and
// writes through the backend on every mutation.
type Store struct {
	backend Backend
	runs    []domain.ScenarioRun

	now   func() time.Time
	newID func() string
}

// New creates a store over the given backend, loading existing runs.
func New(backend Backend) (*Store, error) {
	runs, err := backend.Load()
	if err != nil {
		return nil, &domain.StoreError{Op: "load", Cause: err}
	}
	return &Store{
		backend: backend,
		runs:    runs,
		now:     time.Now,
		newID:   uuid.NewString,
	}, nil
}

// Save snapshots a completed calculation as a new run, prepends it and
// evicts beyond MaxRuns. Persistence is attempted twice; on failure the
// in-memory list is left unchanged and the caller can retry saving without
// recomputing.
func (s *Store) Save(scenarioID string, vars domain.VariableAssignment, outcomes []domain.OutcomeResult, best domain.OutcomeResult) (*domain.ScenarioRun, error) {
	run := domain.ScenarioRun{
		ID:         s.newID(),
		ScenarioID: scenarioID,
		Timestamp:  s.now().UTC(),
		Variables:  vars.Clone(),
		Outcomes:   append([]domain.OutcomeResult(nil), outcomes...),
		BestOption: best,
	}

	updated := make([]domain.ScenarioRun, 0, len(s.runs)+1)
	updated = append(updated, run)
	updated = append(updated, s.runs...)
	if len(updated) > MaxRuns {
		updated = updated[:MaxRuns]
	}

	if err := s.persist(updated); err != nil {
		return nil, &domain.StoreError{Op: "save", Cause: err}
	}

	s.runs = updated
	return &run, nil
}

// List returns the retained runs, most recent first.
func (s *Store) List() []domain.ScenarioRun {
	out := make([]domain.ScenarioRun, len(s.runs))
	copy(out, s.runs)
	return out
}

// Get returns the run with the given id.
func (s *Store) Get(runID string) (*domain.ScenarioRun, error) {
	for i := range s.runs {
		if s.runs[i].ID == runID {
			run := s.runs[i]
			return &run, nil
		}
	}
	return nil, &domain.NotFoundError{Kind: "run", ID: runID}
}

// Delete removes the run with the given id. Deleting an unknown id fails
// with NotFoundError.
func (s *Store) Delete(runID string) error {
	index := -1
	for i := range s.runs {
		if s.runs[i].ID == runID {
			index = i
			break
		}
	}
	if index < 0 {
		return &domain.NotFoundError{Kind: "run", ID: runID}
	}

	updated := make([]domain.ScenarioRun, 0, len(s.runs)-1)
	updated = append(updated, s.runs[:index]...)
	updated = append(updated, s.runs[index+1:]...)

	if err := s.persist(updated); err != nil {
		return &domain.StoreError{Op: "delete", Cause: err}
	}

	s.runs = updated
	return nil
}

// persist writes through the backend, retrying once.
func (s *Store) persist(runs []domain.ScenarioRun) error {
	if err := s.backend.Persist(runs); err == nil {
		return nil
	}
	return s.backend.Persist(runs)
}
