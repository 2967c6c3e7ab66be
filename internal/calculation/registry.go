package calculation

import (
	"sort"

	"github.com/estateplan/epgo/internal/domain"
)

// FormulaFunc computes every outcome of one scenario from a variable
// assignment. Implementations are pure: identical inputs produce identical
// results, with no I/O and no time dependence.
type FormulaFunc func(vars domain.VariableAssignment) (map[string]domain.OutcomeResult, error)

// FormulaRegistry maps scenario ids to their formula implementations. The
// registry replaces a per-scenario conditional: new scenarios register a
// formula here once at startup, and scenarios without one fall back to the
// engine's standard calculation.
type FormulaRegistry struct {
	formulas map[string]FormulaFunc
}

// NewFormulaRegistry creates a registry with all built-in formulas registered.
func NewFormulaRegistry() *FormulaRegistry {
	r := &FormulaRegistry{
		formulas: make(map[string]FormulaFunc),
	}

	r.Register("trustee-compensation", trusteeCompensationFormula)
	r.Register("sibling-dispute", siblingDisputeFormula)
	r.Register("probate-avoidance", probateAvoidanceFormula)
	r.Register("charitable-giving", charitableGivingFormula)
	r.Register("estate-tax-strategy", estateTaxStrategyFormula)

	return r
}

// Register adds or replaces the formula for a scenario id.
func (r *FormulaRegistry) Register(scenarioID string, formula FormulaFunc) {
	r.formulas[scenarioID] = formula
}

// Lookup returns the formula for a scenario id, if one is registered.
func (r *FormulaRegistry) Lookup(scenarioID string) (FormulaFunc, bool) {
	f, ok := r.formulas[scenarioID]
	return f, ok
}

// List returns the scenario ids with registered formulas, sorted.
func (r *FormulaRegistry) List() []string {
	ids := make([]string, 0, len(r.formulas))
	for id := range r.formulas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
