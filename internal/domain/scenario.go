package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// VarType identifies how a scenario variable is entered, validated and displayed.
type VarType string

const (
	VarCurrency   VarType = "currency"
	VarPercentage VarType = "percentage"
	VarCount      VarType = "count"
)

// PercentageSliderMax caps interactive percentage editing. Values up to 100 are
// still accepted from files and flags; the slider just stops at 20.
const PercentageSliderMax = 20

// VariableSpec describes one adjustable numeric input of a scenario.
type VariableSpec struct {
	Name    string          `json:"name" yaml:"name"`
	Label   string          `json:"label" yaml:"label"`
	Type    VarType         `json:"type" yaml:"type"`
	Default decimal.Decimal `json:"default" yaml:"default"`
}

// Parse converts raw user input into a validated value for this variable.
// Currency values may carry a leading "$" and thousands separators.
func (vs VariableSpec) Parse(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	if vs.Type == VarCurrency {
		cleaned = strings.TrimPrefix(cleaned, "$")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}
	if vs.Type == VarPercentage {
		cleaned = strings.TrimSuffix(cleaned, "%")
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("variable %s: invalid %s value %q: %w", vs.Name, vs.Type, raw, err)
	}

	if err := vs.Validate(value); err != nil {
		return decimal.Zero, err
	}
	return value, nil
}

// Validate checks a value against the implicit range of the variable's type.
func (vs VariableSpec) Validate(value decimal.Decimal) error {
	switch vs.Type {
	case VarCurrency:
		if value.IsNegative() {
			return fmt.Errorf("variable %s: currency value cannot be negative", vs.Name)
		}
	case VarPercentage:
		if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("variable %s: percentage must be between 0 and 100", vs.Name)
		}
	case VarCount:
		if value.IsNegative() {
			return fmt.Errorf("variable %s: count cannot be negative", vs.Name)
		}
		if !value.Equal(value.Truncate(0)) {
			return fmt.Errorf("variable %s: count must be a whole number", vs.Name)
		}
	default:
		return fmt.Errorf("variable %s: unknown variable type %q", vs.Name, vs.Type)
	}
	return nil
}

// ScenarioDefinition is an immutable catalog entry describing one decision
// scenario: its adjustable variables and the outcome strategies it evaluates.
type ScenarioDefinition struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Category    string         `json:"category" yaml:"category"`
	Variables   []VariableSpec `json:"variables" yaml:"variables"`
	OutcomeIDs  []string       `json:"outcomeIds" yaml:"outcomes"`
}

// Variable returns the spec for the named variable.
func (sd *ScenarioDefinition) Variable(name string) (VariableSpec, bool) {
	for _, vs := range sd.Variables {
		if vs.Name == name {
			return vs, true
		}
	}
	return VariableSpec{}, false
}

// DefaultAssignment seeds a fresh assignment with every declared default.
func (sd *ScenarioDefinition) DefaultAssignment() VariableAssignment {
	vars := make(VariableAssignment, len(sd.Variables))
	for _, vs := range sd.Variables {
		vars[vs.Name] = vs.Default
	}
	return vars
}

// VariableAssignment maps variable names to values for one calculation session.
type VariableAssignment map[string]decimal.Decimal

// Clone returns an independent copy, used when snapshotting a run.
func (va VariableAssignment) Clone() VariableAssignment {
	out := make(VariableAssignment, len(va))
	for name, value := range va {
		out[name] = value
	}
	return out
}
