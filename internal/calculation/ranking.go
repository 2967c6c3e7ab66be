package calculation

import (
	"sort"

	"github.com/estateplan/epgo/internal/domain"
)

// Rank orders outcome results by score descending. The sort is stable, so
// outcomes with equal scores keep the scenario's declared relative order.
// The input slice is not modified.
func Rank(outcomes []domain.OutcomeResult) []domain.OutcomeResult {
	ranked := make([]domain.OutcomeResult, len(outcomes))
	copy(ranked, outcomes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// SelectBest returns the top-ranked outcome. An empty set means a scenario
// declared zero outcomes, which the catalog rejects at load time.
func SelectBest(ranked []domain.OutcomeResult) (domain.OutcomeResult, error) {
	if len(ranked) == 0 {
		return domain.OutcomeResult{}, &domain.EmptyResultError{}
	}
	return ranked[0], nil
}
