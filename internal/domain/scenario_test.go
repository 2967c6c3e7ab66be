package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableSpec_Parse_Currency(t *testing.T) {
	spec := VariableSpec{Name: "trustAssets", Type: VarCurrency}

	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{"plain number", "2000000", "2000000", false},
		{"dollar sign and commas", "$1,500,000.50", "1500000.5", false},
		{"whitespace", "  42  ", "42", false},
		{"zero", "0", "0", false},
		{"negative rejected", "-100", "", true},
		{"garbage rejected", "lots", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := spec.Parse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err, "Should reject %q", tt.raw)
				return
			}
			require.NoError(t, err)
			assert.True(t, value.Equal(decimal.RequireFromString(tt.expected)),
				"Expected %s, got %s", tt.expected, value)
		})
	}
}

func TestVariableSpec_Parse_Percentage(t *testing.T) {
	spec := VariableSpec{Name: "percentageFee", Type: VarPercentage}

	value, err := spec.Parse("6.5%")
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromFloat(6.5)), "Should strip percent suffix")

	_, err = spec.Parse("101")
	assert.Error(t, err, "Should reject percentages above 100")

	_, err = spec.Parse("-1")
	assert.Error(t, err, "Should reject negative percentages")
}

func TestVariableSpec_Parse_Count(t *testing.T) {
	spec := VariableSpec{Name: "numBeneficiaries", Type: VarCount}

	value, err := spec.Parse("3")
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(3)))

	_, err = spec.Parse("2.5")
	assert.Error(t, err, "Should reject fractional counts")

	_, err = spec.Parse("-1")
	assert.Error(t, err, "Should reject negative counts")
}

func TestVariableSpec_Validate_UnknownType(t *testing.T) {
	spec := VariableSpec{Name: "x", Type: VarType("mystery")}
	assert.Error(t, spec.Validate(decimal.NewFromInt(1)))
}

func TestScenarioDefinition_DefaultAssignment(t *testing.T) {
	sd := ScenarioDefinition{
		ID: "test",
		Variables: []VariableSpec{
			{Name: "a", Type: VarCurrency, Default: decimal.NewFromInt(100)},
			{Name: "b", Type: VarCount, Default: decimal.NewFromInt(2)},
		},
	}

	vars := sd.DefaultAssignment()
	require.Len(t, vars, 2)
	assert.True(t, vars["a"].Equal(decimal.NewFromInt(100)))
	assert.True(t, vars["b"].Equal(decimal.NewFromInt(2)))
}

func TestScenarioDefinition_Variable(t *testing.T) {
	sd := ScenarioDefinition{
		Variables: []VariableSpec{{Name: "a", Label: "A"}},
	}

	spec, ok := sd.Variable("a")
	assert.True(t, ok)
	assert.Equal(t, "A", spec.Label)

	_, ok = sd.Variable("missing")
	assert.False(t, ok)
}

func TestVariableAssignment_Clone(t *testing.T) {
	original := VariableAssignment{"a": decimal.NewFromInt(1)}
	clone := original.Clone()

	clone["a"] = decimal.NewFromInt(99)
	assert.True(t, original["a"].Equal(decimal.NewFromInt(1)),
		"Mutating the clone must not affect the original")
}
