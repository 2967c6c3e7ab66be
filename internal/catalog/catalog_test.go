package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estateplan/epgo/internal/domain"
)

func TestBuiltin(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err, "Built-in catalog must validate")
	require.NotNil(t, cat)

	scenarios := cat.List()
	assert.NotEmpty(t, scenarios)
	assert.Equal(t, "trustee-compensation", scenarios[0].ID, "List should keep declaration order")
	assert.Equal(t, "sibling-dispute", scenarios[1].ID)
}

func TestBuiltin_OutcomeConsistency(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	// Every outcome id any scenario declares must resolve in the dictionary.
	for _, sd := range cat.List() {
		require.NotEmpty(t, sd.OutcomeIDs, "scenario %s must declare outcomes", sd.ID)
		for _, id := range sd.OutcomeIDs {
			od, err := cat.DescribeOutcome(id)
			require.NoError(t, err, "scenario %s references unknown outcome %s", sd.ID, id)
			assert.NotEmpty(t, od.Label)
			assert.Contains(t, []domain.RiskTier{domain.RiskLow, domain.RiskMedium, domain.RiskHigh}, od.RiskTier)
		}
	}
}

func TestBuiltin_DefaultsValid(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	for _, sd := range cat.List() {
		for _, vs := range sd.Variables {
			assert.NoError(t, vs.Validate(vs.Default),
				"scenario %s variable %s has an invalid default", sd.ID, vs.Name)
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	sd, err := cat.Get("sibling-dispute")
	require.NoError(t, err)
	assert.Equal(t, "Sibling Dispute Resolution", sd.Title)

	_, err = cat.Get("nonexistent")
	require.Error(t, err)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "scenario", notFound.Kind)
}

func TestCatalog_DescribeOutcome_Unknown(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	_, err = cat.DescribeOutcome("nonexistent")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "outcome", notFound.Kind)
}

func TestNew_Validation(t *testing.T) {
	outcome := domain.OutcomeDescriptor{ID: "a", Label: "A", RiskTier: domain.RiskLow, TimeHorizon: "immediate"}
	variable := domain.VariableSpec{Name: "v", Label: "V", Type: domain.VarCurrency, Default: decimal.NewFromInt(1)}
	valid := domain.ScenarioDefinition{
		ID: "s", Title: "S",
		Variables:  []domain.VariableSpec{variable},
		OutcomeIDs: []string{"a"},
	}

	tests := []struct {
		name     string
		defs     []domain.ScenarioDefinition
		outcomes []domain.OutcomeDescriptor
		wantErr  string
	}{
		{
			name:     "valid",
			defs:     []domain.ScenarioDefinition{valid},
			outcomes: []domain.OutcomeDescriptor{outcome},
		},
		{
			name:     "duplicate scenario id",
			defs:     []domain.ScenarioDefinition{valid, valid},
			outcomes: []domain.OutcomeDescriptor{outcome},
			wantErr:  "duplicate scenario id",
		},
		{
			name: "unknown outcome",
			defs: []domain.ScenarioDefinition{{
				ID: "s", Title: "S",
				Variables:  []domain.VariableSpec{variable},
				OutcomeIDs: []string{"missing"},
			}},
			outcomes: []domain.OutcomeDescriptor{outcome},
			wantErr:  "not in the outcome dictionary",
		},
		{
			name: "no outcomes",
			defs: []domain.ScenarioDefinition{{
				ID: "s", Title: "S",
				Variables: []domain.VariableSpec{variable},
			}},
			outcomes: []domain.OutcomeDescriptor{outcome},
			wantErr:  "at least one outcome",
		},
		{
			name: "invalid default",
			defs: []domain.ScenarioDefinition{{
				ID: "s", Title: "S",
				Variables: []domain.VariableSpec{
					{Name: "p", Label: "P", Type: domain.VarPercentage, Default: decimal.NewFromInt(150)},
				},
				OutcomeIDs: []string{"a"},
			}},
			outcomes: []domain.OutcomeDescriptor{outcome},
			wantErr:  "invalid default",
		},
		{
			name: "duplicate variable",
			defs: []domain.ScenarioDefinition{{
				ID: "s", Title: "S",
				Variables:  []domain.VariableSpec{variable, variable},
				OutcomeIDs: []string{"a"},
			}},
			outcomes: []domain.OutcomeDescriptor{outcome},
			wantErr:  "duplicate variable name",
		},
		{
			name:     "duplicate outcome id",
			defs:     []domain.ScenarioDefinition{valid},
			outcomes: []domain.OutcomeDescriptor{outcome, outcome},
			wantErr:  "duplicate outcome id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.defs, tt.outcomes)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	// NotFoundError identity is part of the contract, not just the message.
	cat, err := New([]domain.ScenarioDefinition{valid}, []domain.OutcomeDescriptor{outcome})
	require.NoError(t, err)
	_, err = cat.Get("other")
	assert.True(t, errors.As(err, new(*domain.NotFoundError)))
}
