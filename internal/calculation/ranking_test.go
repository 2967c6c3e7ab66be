package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estateplan/epgo/internal/domain"
)

func TestRank_ScoreDescending(t *testing.T) {
	outcomes := []domain.OutcomeResult{
		{OutcomeID: "low", Score: 35},
		{OutcomeID: "high", Score: 90},
		{OutcomeID: "mid", Score: 70},
	}

	ranked := Rank(outcomes)
	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].OutcomeID)
	assert.Equal(t, "mid", ranked[1].OutcomeID)
	assert.Equal(t, "low", ranked[2].OutcomeID)
}

func TestRank_TiesKeepDeclaredOrder(t *testing.T) {
	outcomes := []domain.OutcomeResult{
		{OutcomeID: "first", Score: 80},
		{OutcomeID: "second", Score: 80},
		{OutcomeID: "third", Score: 80},
	}

	ranked := Rank(outcomes)
	assert.Equal(t, "first", ranked[0].OutcomeID, "Equal scores must keep declared order")
	assert.Equal(t, "second", ranked[1].OutcomeID)
	assert.Equal(t, "third", ranked[2].OutcomeID)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	outcomes := []domain.OutcomeResult{
		{OutcomeID: "a", Score: 10},
		{OutcomeID: "b", Score: 99},
	}

	_ = Rank(outcomes)
	assert.Equal(t, "a", outcomes[0].OutcomeID, "Input slice must not be reordered")
	assert.Equal(t, "b", outcomes[1].OutcomeID)
}

func TestSelectBest(t *testing.T) {
	ranked := Rank([]domain.OutcomeResult{
		{OutcomeID: "hybrid", ProjectedValue: decimal.NewFromInt(19000), Score: 90},
		{OutcomeID: "hourly", ProjectedValue: decimal.NewFromInt(18000), Score: 80},
	})

	best, err := SelectBest(ranked)
	require.NoError(t, err)
	assert.Equal(t, "hybrid", best.OutcomeID)
}

func TestSelectBest_Empty(t *testing.T) {
	_, err := SelectBest(nil)
	require.Error(t, err)

	var empty *domain.EmptyResultError
	assert.ErrorAs(t, err, &empty)
}
