package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/estateplan/epgo/internal/domain"
)

// Built-in scenario formulas. Projected values are currency-scale decimals;
// scores are fixed per scenario/outcome editorial constants, not derived.

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// need fetches a required variable, failing loudly when the caller never
// seeded it.
func need(scenarioID string, vars domain.VariableAssignment, name string) (decimal.Decimal, error) {
	v, ok := vars[name]
	if !ok {
		return decimal.Zero, &domain.MissingVariableError{ScenarioID: scenarioID, Variable: name}
	}
	return v, nil
}

// needDenominator fetches a variable used as a divisor. Zero is rejected
// rather than clamped so a data-entry mistake surfaces instead of silently
// shifting every projected value.
func needDenominator(scenarioID string, vars domain.VariableAssignment, name string) (decimal.Decimal, error) {
	v, err := need(scenarioID, vars, name)
	if err != nil {
		return decimal.Zero, err
	}
	if v.IsZero() {
		return decimal.Zero, &domain.DivisionByZeroError{ScenarioID: scenarioID, Variable: name}
	}
	return v, nil
}

// pct converts a whole-number percentage variable (6 means 6%) to a rate.
func pct(v decimal.Decimal) decimal.Decimal {
	return v.Div(hundred)
}

func trusteeCompensationFormula(vars domain.VariableAssignment) (map[string]domain.OutcomeResult, error) {
	const id = "trustee-compensation"

	assets, err := need(id, vars, "trustAssets")
	if err != nil {
		return nil, err
	}
	hours, err := need(id, vars, "hoursPerMonth")
	if err != nil {
		return nil, err
	}
	rate, err := need(id, vars, "hourlyRate")
	if err != nil {
		return nil, err
	}
	feePct, err := need(id, vars, "percentageFee")
	if err != nil {
		return nil, err
	}

	hourly := hours.Mul(twelve).Mul(rate)
	percentage := assets.Mul(pct(feePct))
	hybrid := assets.Mul(decimal.NewFromFloat(0.005)).Add(hourly.Mul(decimal.NewFromFloat(0.5)))
	statutory := statutoryFee(assets)

	return map[string]domain.OutcomeResult{
		"hourly": {
			OutcomeID:      "hourly",
			ProjectedValue: hourly,
			Recommendation: "Fair for low-activity trusts; requires detailed time records",
			Score:          80,
		},
		"percentage": {
			OutcomeID:      "percentage",
			ProjectedValue: percentage,
			Recommendation: "Predictable and simple, but overpays when little work is needed",
			Score:          75,
		},
		"hybrid": {
			OutcomeID:      "hybrid",
			ProjectedValue: hybrid,
			Recommendation: "Balances asset size against actual effort; lowest friction in practice",
			Score:          90,
		},
		"statutory": {
			OutcomeID:      "statutory",
			ProjectedValue: statutory,
			Recommendation: "Court-defensible schedule, usually the most expensive option",
			Score:          70,
		},
	}, nil
}

// statutoryFee applies the tiered statutory schedule: 4% of the first
// $100,000, 3% of the next $100,000, 2% of the next $800,000, 1% above $1M.
func statutoryFee(assets decimal.Decimal) decimal.Decimal {
	tiers := []struct {
		cap  decimal.Decimal
		rate decimal.Decimal
	}{
		{decimal.NewFromInt(100000), decimal.NewFromFloat(0.04)},
		{decimal.NewFromInt(100000), decimal.NewFromFloat(0.03)},
		{decimal.NewFromInt(800000), decimal.NewFromFloat(0.02)},
	}

	fee := decimal.Zero
	remaining := assets
	for _, tier := range tiers {
		if remaining.IsZero() || remaining.IsNegative() {
			return fee
		}
		band := decimal.Min(remaining, tier.cap)
		fee = fee.Add(band.Mul(tier.rate))
		remaining = remaining.Sub(band)
	}
	return fee.Add(remaining.Mul(decimal.NewFromFloat(0.01)))
}

func siblingDisputeFormula(vars domain.VariableAssignment) (map[string]domain.OutcomeResult, error) {
	const id = "sibling-dispute"

	estate, err := need(id, vars, "totalEstate")
	if err != nil {
		return nil, err
	}
	beneficiaries, err := needDenominator(id, vars, "numBeneficiaries")
	if err != nil {
		return nil, err
	}
	disputed, err := need(id, vars, "disputedAmount")
	if err != nil {
		return nil, err
	}
	mediation, err := need(id, vars, "mediationCost")
	if err != nil {
		return nil, err
	}

	share := estate.Div(beneficiaries)
	mediated := share.Sub(mediation.Div(beneficiaries))
	litigationCost := disputed.Mul(decimal.NewFromFloat(0.30))
	litigated := share.Sub(litigationCost.Div(beneficiaries))
	buyoutCost := disputed.Mul(decimal.NewFromFloat(0.05))
	buyout := share.Sub(buyoutCost.Div(beneficiaries))

	return map[string]domain.OutcomeResult{
		"equal-split": {
			OutcomeID:      "equal-split",
			ProjectedValue: share,
			Recommendation: "Fast and cheap, but leaves the disputed assets unresolved",
			Score:          70,
		},
		"mediated": {
			OutcomeID:      "mediated",
			ProjectedValue: mediated,
			Recommendation: "Preserves family relationships at a modest shared cost",
			Score:          85,
		},
		"litigated": {
			OutcomeID:      "litigated",
			ProjectedValue: litigated,
			Recommendation: "Highest cost and longest timeline with an uncertain result",
			Score:          35,
		},
		"buyout": {
			OutcomeID:      "buyout",
			ProjectedValue: buyout,
			Recommendation: "Clean break when one party wants the assets and has liquidity",
			Score:          60,
		},
	}, nil
}

func probateAvoidanceFormula(vars domain.VariableAssignment) (map[string]domain.OutcomeResult, error) {
	const id = "probate-avoidance"

	estate, err := need(id, vars, "estateValue")
	if err != nil {
		return nil, err
	}
	probatePct, err := need(id, vars, "probateCostPct")
	if err != nil {
		return nil, err
	}
	setup, err := need(id, vars, "trustSetupCost")
	if err != nil {
		return nil, err
	}
	annual, err := need(id, vars, "annualAdminCost")
	if err != nil {
		return nil, err
	}
	years, err := need(id, vars, "adminYears")
	if err != nil {
		return nil, err
	}

	willOnly := estate.Mul(decimal.NewFromInt(1).Sub(pct(probatePct)))
	trust := estate.Sub(setup).Sub(annual.Mul(years))
	// Joint title avoids probate but exposes roughly 2% to retitling costs
	// and creditor claims against the surviving owner.
	joint := estate.Mul(decimal.NewFromFloat(0.98))

	return map[string]domain.OutcomeResult{
		"will-only": {
			OutcomeID:      "will-only",
			ProjectedValue: willOnly,
			Recommendation: "No upfront cost, but probate fees and delay reduce the estate",
			Score:          55,
		},
		"revocable-trust": {
			OutcomeID:      "revocable-trust",
			ProjectedValue: trust,
			Recommendation: "Small setup cost eliminates probate entirely; heirs get immediate access",
			Score:          90,
		},
		"joint-ownership": {
			OutcomeID:      "joint-ownership",
			ProjectedValue: joint,
			Recommendation: "Simple for major assets, but loses control and invites co-owner risk",
			Score:          65,
		},
	}, nil
}

func charitableGivingFormula(vars domain.VariableAssignment) (map[string]domain.OutcomeResult, error) {
	const id = "charitable-giving"

	estate, err := need(id, vars, "estateValue")
	if err != nil {
		return nil, err
	}
	gift, err := need(id, vars, "charitableAmount")
	if err != nil {
		return nil, err
	}
	ret, err := need(id, vars, "expectedReturn")
	if err != nil {
		return nil, err
	}
	years, err := need(id, vars, "payoutYears")
	if err != nil {
		return nil, err
	}

	family := estate.Sub(gift)
	// Remainder trust pays the family roughly half the gross return on the
	// gifted principal over the payout term.
	trustIncome := gift.Mul(pct(ret)).Mul(years).Mul(decimal.NewFromFloat(0.5))
	// Donor-advised fund: immediate deduction recovers about 30% of the gift.
	dafBenefit := gift.Mul(decimal.NewFromFloat(0.30))

	return map[string]domain.OutcomeResult{
		"outright-gift": {
			OutcomeID:      "outright-gift",
			ProjectedValue: family,
			Recommendation: "Maximum charitable impact, no retained benefit for the family",
			Score:          65,
		},
		"charitable-trust": {
			OutcomeID:      "charitable-trust",
			ProjectedValue: family.Add(trustIncome),
			Recommendation: "Retains an income stream for the term while funding the charity",
			Score:          85,
		},
		"donor-advised-fund": {
			OutcomeID:      "donor-advised-fund",
			ProjectedValue: family.Add(dafBenefit),
			Recommendation: "Immediate deduction with flexible grant timing",
			Score:          80,
		},
	}, nil
}

func estateTaxStrategyFormula(vars domain.VariableAssignment) (map[string]domain.OutcomeResult, error) {
	const id = "estate-tax-strategy"

	taxable, err := need(id, vars, "taxableEstate")
	if err != nil {
		return nil, err
	}
	taxRate, err := need(id, vars, "estateTaxRate")
	if err != nil {
		return nil, err
	}
	gifts, err := need(id, vars, "annualGifts")
	if err != nil {
		return nil, err
	}
	years, err := need(id, vars, "planningYears")
	if err != nil {
		return nil, err
	}

	keep := decimal.NewFromInt(1).Sub(pct(taxRate))

	doNothing := taxable.Mul(keep)

	gifted := decimal.Min(gifts.Mul(years), taxable)
	gifting := taxable.Sub(gifted).Mul(keep).Add(gifted)

	// An irrevocable trust shelters roughly 30% of the estate from tax.
	sheltered := taxable.Mul(decimal.NewFromFloat(0.30))
	trust := taxable.Sub(sheltered).Mul(keep).Add(sheltered)

	return map[string]domain.OutcomeResult{
		"do-nothing": {
			OutcomeID:      "do-nothing",
			ProjectedValue: doNothing,
			Recommendation: "Full tax exposure; only sensible below the exemption threshold",
			Score:          40,
		},
		"lifetime-gifting": {
			OutcomeID:      "lifetime-gifting",
			ProjectedValue: gifting,
			Recommendation: "Annual exclusion gifts steadily move value out of the taxable estate",
			Score:          80,
		},
		"irrevocable-trust": {
			OutcomeID:      "irrevocable-trust",
			ProjectedValue: trust,
			Recommendation: "Largest shelter per year of planning, at the cost of giving up control",
			Score:          85,
		},
	}, nil
}
