package runstore

import "github.com/estateplan/epgo/internal/domain"

// MemoryBackend keeps runs in process memory. It is the test backend and the
// default when no store path is configured.
type MemoryBackend struct {
	runs []domain.ScenarioRun
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load() ([]domain.ScenarioRun, error) {
	out := make([]domain.ScenarioRun, len(b.runs))
	copy(out, b.runs)
	return out, nil
}

func (b *MemoryBackend) Persist(runs []domain.ScenarioRun) error {
	b.runs = make([]domain.ScenarioRun, len(runs))
	copy(b.runs, runs)
	return nil
}
