// Package output formats calculation results and saved runs for display.
// Formatting never changes the underlying decimals; the engine's results are
// already final when they arrive here.
package output

import (
	"github.com/estateplan/epgo/internal/domain"
)

// ResultSet bundles everything a formatter needs to render one calculation:
// the scenario, the variable assignment used, the ranked outcomes
// (best-first) and the recommended outcome.
type ResultSet struct {
	Scenario    *domain.ScenarioDefinition
	Variables   domain.VariableAssignment
	Outcomes    []domain.OutcomeResult
	Best        domain.OutcomeResult
	Descriptors map[string]domain.OutcomeDescriptor
}

// Describe returns the descriptor for an outcome id, with a label-only
// stand-in when no metadata is available.
func (rs *ResultSet) Describe(outcomeID string) domain.OutcomeDescriptor {
	if od, ok := rs.Descriptors[outcomeID]; ok {
		return od
	}
	return domain.OutcomeDescriptor{ID: outcomeID, Label: outcomeID}
}

// Formatter renders a result set into a display format.
type Formatter interface {
	Format(rs *ResultSet) (string, error)
}

// GetFormatterByName returns the formatter for a format name, or nil when
// the name is unknown. "table" is the human-readable default.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "table", "":
		return &TableFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}
