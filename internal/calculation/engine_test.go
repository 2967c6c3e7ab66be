package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estateplan/epgo/internal/catalog"
	"github.com/estateplan/epgo/internal/domain"
)

func builtinEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	return NewEngine(cat)
}

func TestEngine_AllBuiltinScenariosWithDefaults(t *testing.T) {
	engine := builtinEngine(t)

	// Every built-in scenario must compute cleanly from its own defaults and
	// yield one result per declared outcome, in declared order.
	for _, sd := range engine.Catalog.List() {
		t.Run(sd.ID, func(t *testing.T) {
			results, err := engine.ComputeOutcomes(sd.ID, sd.DefaultAssignment())
			require.NoError(t, err)
			require.Len(t, results, len(sd.OutcomeIDs))
			for i, r := range results {
				assert.Equal(t, sd.OutcomeIDs[i], r.OutcomeID)
				assert.NotEmpty(t, r.Recommendation)
			}
		})
	}
}

func TestEngine_Deterministic(t *testing.T) {
	engine := builtinEngine(t)
	sd, err := engine.Catalog.Get("trustee-compensation")
	require.NoError(t, err)
	vars := sd.DefaultAssignment()

	first, err := engine.ComputeOutcomes(sd.ID, vars)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := engine.ComputeOutcomes(sd.ID, vars)
		require.NoError(t, err)
		require.Len(t, again, len(first))
		for j := range first {
			assert.Equal(t, first[j].OutcomeID, again[j].OutcomeID)
			assert.True(t, first[j].ProjectedValue.Equal(again[j].ProjectedValue),
				"run %d outcome %s drifted: %s vs %s",
				i, first[j].OutcomeID, first[j].ProjectedValue, again[j].ProjectedValue)
			assert.Equal(t, first[j].Score, again[j].Score)
		}
	}
}

func TestEngine_UnknownScenario(t *testing.T) {
	engine := builtinEngine(t)

	_, err := engine.ComputeOutcomes("nonexistent", domain.VariableAssignment{})
	require.Error(t, err)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "scenario", notFound.Kind)
}

func TestEngine_MissingVariable(t *testing.T) {
	engine := builtinEngine(t)

	vars := domain.VariableAssignment{
		"trustAssets": decimal.NewFromInt(2000000),
	}
	_, err := engine.ComputeOutcomes("trustee-compensation", vars)
	require.Error(t, err)

	var missing *domain.MissingVariableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "trustee-compensation", missing.ScenarioID)
}

func TestEngine_FallbackForUnregisteredFormula(t *testing.T) {
	cat, err := catalog.New(
		[]domain.ScenarioDefinition{{
			ID:    "custom",
			Title: "Custom",
			Variables: []domain.VariableSpec{
				{Name: "a", Label: "A", Type: domain.VarCurrency, Default: decimal.NewFromInt(100)},
				{Name: "b", Label: "B", Type: domain.VarCurrency, Default: decimal.NewFromInt(300)},
			},
			OutcomeIDs: []string{"x", "y"},
		}},
		[]domain.OutcomeDescriptor{
			{ID: "x", Label: "X", RiskTier: domain.RiskLow, TimeHorizon: "immediate"},
			{ID: "y", Label: "Y", RiskTier: domain.RiskHigh, TimeHorizon: "years"},
		},
	)
	require.NoError(t, err)

	engine := NewEngine(cat)
	sd, err := cat.Get("custom")
	require.NoError(t, err)

	results, err := engine.ComputeOutcomes("custom", sd.DefaultAssignment())
	require.NoError(t, err)
	require.Len(t, results, 2)

	// mean(100, 300) / 2 outcomes = 100 apiece
	for _, r := range results {
		assert.True(t, r.ProjectedValue.Equal(decimal.NewFromInt(100)),
			"fallback value for %s: got %s", r.OutcomeID, r.ProjectedValue)
		assert.Equal(t, 75, r.Score)
		assert.Equal(t, "Standard calculation", r.Recommendation)
	}
}

func TestEngine_FormulaOmittingDeclaredOutcome(t *testing.T) {
	engine := builtinEngine(t)
	engine.Registry.Register("trustee-compensation",
		func(vars domain.VariableAssignment) (map[string]domain.OutcomeResult, error) {
			return map[string]domain.OutcomeResult{
				"hourly": {OutcomeID: "hourly", ProjectedValue: decimal.NewFromInt(1)},
			}, nil
		})

	sd, err := engine.Catalog.Get("trustee-compensation")
	require.NoError(t, err)

	_, err = engine.ComputeOutcomes(sd.ID, sd.DefaultAssignment())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no result for outcome")
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Infof(format string, args ...any)  {}
func (l *recordingLogger) Warnf(format string, args ...any)  {}
func (l *recordingLogger) Errorf(format string, args ...any) {}

func TestEngine_SetLogger(t *testing.T) {
	engine := builtinEngine(t)

	logger := &recordingLogger{}
	engine.SetLogger(logger)
	assert.Equal(t, logger, engine.Logger)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "nil should restore the no-op logger")
}
