// Package catalog holds the static registry of decision scenarios and the
// outcome dictionary. Both are built and validated once at startup and are
// read-only afterwards.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/estateplan/epgo/internal/domain"
)

// Catalog is the process-wide scenario registry. Lookups are pure in-memory
// reads with no side effects.
type Catalog struct {
	scenarios []domain.ScenarioDefinition
	byID      map[string]int
	outcomes  map[string]domain.OutcomeDescriptor
}

// New builds a catalog from scenario definitions and an outcome dictionary,
// validating the cross-references between them. Validation failures are
// startup-time errors: a catalog that fails here must not be used.
func New(defs []domain.ScenarioDefinition, outcomes []domain.OutcomeDescriptor) (*Catalog, error) {
	c := &Catalog{
		scenarios: defs,
		byID:      make(map[string]int, len(defs)),
		outcomes:  make(map[string]domain.OutcomeDescriptor, len(outcomes)),
	}

	for _, od := range outcomes {
		if od.ID == "" {
			return nil, fmt.Errorf("outcome descriptor with empty id")
		}
		if _, dup := c.outcomes[od.ID]; dup {
			return nil, fmt.Errorf("duplicate outcome id %q", od.ID)
		}
		c.outcomes[od.ID] = od
	}

	for i, sd := range defs {
		if err := validateDefinition(&sd, c.outcomes); err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i, sd.ID, err)
		}
		if _, dup := c.byID[sd.ID]; dup {
			return nil, fmt.Errorf("duplicate scenario id %q", sd.ID)
		}
		c.byID[sd.ID] = i
	}

	return c, nil
}

// Builtin returns the catalog of built-in scenarios and outcomes.
func Builtin() (*Catalog, error) {
	return New(builtinScenarios(), builtinOutcomes())
}

// List returns every scenario in declaration order.
func (c *Catalog) List() []domain.ScenarioDefinition {
	out := make([]domain.ScenarioDefinition, len(c.scenarios))
	copy(out, c.scenarios)
	return out
}

// Get returns the scenario with the given id.
func (c *Catalog) Get(id string) (*domain.ScenarioDefinition, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "scenario", ID: id}
	}
	return &c.scenarios[i], nil
}

// DescribeOutcome returns display metadata for an outcome id.
func (c *Catalog) DescribeOutcome(id string) (domain.OutcomeDescriptor, error) {
	od, ok := c.outcomes[id]
	if !ok {
		return domain.OutcomeDescriptor{}, &domain.NotFoundError{Kind: "outcome", ID: id}
	}
	return od, nil
}

func validateDefinition(sd *domain.ScenarioDefinition, outcomes map[string]domain.OutcomeDescriptor) error {
	if sd.ID == "" {
		return fmt.Errorf("scenario id is required")
	}
	if sd.Title == "" {
		return fmt.Errorf("scenario title is required")
	}
	if len(sd.Variables) == 0 {
		return fmt.Errorf("at least one variable is required")
	}
	if len(sd.OutcomeIDs) == 0 {
		return fmt.Errorf("at least one outcome is required")
	}

	seen := make(map[string]bool, len(sd.Variables))
	for _, vs := range sd.Variables {
		if vs.Name == "" {
			return fmt.Errorf("variable name is required")
		}
		if seen[vs.Name] {
			return fmt.Errorf("duplicate variable name %q", vs.Name)
		}
		seen[vs.Name] = true
		if err := vs.Validate(vs.Default); err != nil {
			return fmt.Errorf("invalid default: %w", err)
		}
	}

	for _, id := range sd.OutcomeIDs {
		if _, ok := outcomes[id]; !ok {
			return fmt.Errorf("outcome %q is not in the outcome dictionary", id)
		}
	}
	return nil
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// builtinScenarios declares the shipped scenarios. Declaration order is the
// order List returns, and per-scenario outcome order is the pre-ranking
// result order.
func builtinScenarios() []domain.ScenarioDefinition {
	return []domain.ScenarioDefinition{
		{
			ID:          "trustee-compensation",
			Title:       "Trustee Compensation",
			Description: "Compare fee structures for an individual or corporate trustee",
			Category:    "Trust Administration",
			Variables: []domain.VariableSpec{
				{Name: "trustAssets", Label: "Trust Assets", Type: domain.VarCurrency, Default: dec("2000000")},
				{Name: "hoursPerMonth", Label: "Hours Per Month", Type: domain.VarCount, Default: dec("10")},
				{Name: "hourlyRate", Label: "Hourly Rate", Type: domain.VarCurrency, Default: dec("150")},
				{Name: "percentageFee", Label: "Percentage Fee", Type: domain.VarPercentage, Default: dec("1")},
			},
			OutcomeIDs: []string{"hourly", "percentage", "hybrid", "statutory"},
		},
		{
			ID:          "sibling-dispute",
			Title:       "Sibling Dispute Resolution",
			Description: "Weigh approaches to resolving a contested division among beneficiaries",
			Category:    "Dispute Resolution",
			Variables: []domain.VariableSpec{
				{Name: "totalEstate", Label: "Total Estate", Type: domain.VarCurrency, Default: dec("1000000")},
				{Name: "numBeneficiaries", Label: "Beneficiaries", Type: domain.VarCount, Default: dec("3")},
				{Name: "disputedAmount", Label: "Disputed Amount", Type: domain.VarCurrency, Default: dec("200000")},
				{Name: "mediationCost", Label: "Mediation Cost", Type: domain.VarCurrency, Default: dec("15000")},
			},
			OutcomeIDs: []string{"equal-split", "mediated", "litigated", "buyout"},
		},
		{
			ID:          "probate-avoidance",
			Title:       "Probate Avoidance",
			Description: "Compare estate structures by net value passing to heirs",
			Category:    "Estate Structure",
			Variables: []domain.VariableSpec{
				{Name: "estateValue", Label: "Estate Value", Type: domain.VarCurrency, Default: dec("1500000")},
				{Name: "probateCostPct", Label: "Probate Cost", Type: domain.VarPercentage, Default: dec("4")},
				{Name: "trustSetupCost", Label: "Trust Setup Cost", Type: domain.VarCurrency, Default: dec("3500")},
				{Name: "annualAdminCost", Label: "Annual Admin Cost", Type: domain.VarCurrency, Default: dec("500")},
				{Name: "adminYears", Label: "Years Until Settlement", Type: domain.VarCount, Default: dec("10")},
			},
			OutcomeIDs: []string{"will-only", "revocable-trust", "joint-ownership"},
		},
		{
			ID:          "charitable-giving",
			Title:       "Charitable Giving",
			Description: "Compare charitable vehicles by combined family and charitable value",
			Category:    "Philanthropy",
			Variables: []domain.VariableSpec{
				{Name: "estateValue", Label: "Estate Value", Type: domain.VarCurrency, Default: dec("2500000")},
				{Name: "charitableAmount", Label: "Charitable Amount", Type: domain.VarCurrency, Default: dec("500000")},
				{Name: "expectedReturn", Label: "Expected Return", Type: domain.VarPercentage, Default: dec("6")},
				{Name: "payoutYears", Label: "Payout Years", Type: domain.VarCount, Default: dec("20")},
			},
			OutcomeIDs: []string{"outright-gift", "charitable-trust", "donor-advised-fund"},
		},
		{
			ID:          "estate-tax-strategy",
			Title:       "Estate Tax Strategy",
			Description: "Project after-tax value passing to heirs under different plans",
			Category:    "Tax Planning",
			Variables: []domain.VariableSpec{
				{Name: "taxableEstate", Label: "Taxable Estate", Type: domain.VarCurrency, Default: dec("15000000")},
				{Name: "estateTaxRate", Label: "Estate Tax Rate", Type: domain.VarPercentage, Default: dec("40")},
				{Name: "annualGifts", Label: "Annual Gifts", Type: domain.VarCurrency, Default: dec("36000")},
				{Name: "planningYears", Label: "Planning Years", Type: domain.VarCount, Default: dec("10")},
			},
			OutcomeIDs: []string{"do-nothing", "lifetime-gifting", "irrevocable-trust"},
		},
	}
}
