package catalog

import "github.com/estateplan/epgo/internal/domain"

// builtinOutcomes is the outcome dictionary shipped with the catalog. Every
// outcome id referenced by a built-in scenario resolves here; New enforces
// the same invariant for user-supplied scenarios.
func builtinOutcomes() []domain.OutcomeDescriptor {
	return []domain.OutcomeDescriptor{
		// Trustee compensation strategies
		{
			ID:          "hourly",
			Label:       "Hourly Billing",
			Description: "Trustee bills actual hours worked at an agreed hourly rate",
			RiskTier:    domain.RiskLow,
			TimeHorizon: "ongoing",
		},
		{
			ID:          "percentage",
			Label:       "Percentage of Assets",
			Description: "Annual fee as a fixed percentage of trust assets under management",
			RiskTier:    domain.RiskMedium,
			TimeHorizon: "ongoing",
		},
		{
			ID:          "hybrid",
			Label:       "Hybrid Fee",
			Description: "Reduced asset percentage combined with reduced hourly billing",
			RiskTier:    domain.RiskLow,
			TimeHorizon: "ongoing",
		},
		{
			ID:          "statutory",
			Label:       "Statutory Schedule",
			Description: "Compensation per the state statutory fee schedule",
			RiskTier:    domain.RiskMedium,
			TimeHorizon: "ongoing",
		},

		// Sibling dispute resolutions
		{
			ID:          "equal-split",
			Label:       "Equal Split",
			Description: "Divide the estate equally among beneficiaries, disputed items included",
			RiskTier:    domain.RiskMedium,
			TimeHorizon: "immediate",
		},
		{
			ID:          "mediated",
			Label:       "Mediated Settlement",
			Description: "Neutral mediator negotiates division; cost shared among beneficiaries",
			RiskTier:    domain.RiskLow,
			TimeHorizon: "months",
		},
		{
			ID:          "litigated",
			Label:       "Litigation",
			Description: "Contest the disputed assets in probate court",
			RiskTier:    domain.RiskHigh,
			TimeHorizon: "years",
		},
		{
			ID:          "buyout",
			Label:       "Negotiated Buyout",
			Description: "One beneficiary buys out the others' interest in disputed assets",
			RiskTier:    domain.RiskMedium,
			TimeHorizon: "months",
		},

		// Probate avoidance structures
		{
			ID:          "will-only",
			Label:       "Will Only",
			Description: "Simple will; estate passes through probate",
			RiskTier:    domain.RiskMedium,
			TimeHorizon: "years",
		},
		{
			ID:          "revocable-trust",
			Label:       "Revocable Living Trust",
			Description: "Assets titled in a living trust bypass probate entirely",
			RiskTier:    domain.RiskLow,
			TimeHorizon: "immediate",
		},
		{
			ID:          "joint-ownership",
			Label:       "Joint Ownership",
			Description: "Joint title with right of survivorship on major assets",
			RiskTier:    domain.RiskMedium,
			TimeHorizon: "immediate",
		},

		// Charitable giving vehicles
		{
			ID:          "outright-gift",
			Label:       "Outright Gift",
			Description: "Direct bequest to charity at death",
			RiskTier:    domain.RiskLow,
			TimeHorizon: "immediate",
		},
		{
			ID:          "charitable-trust",
			Label:       "Charitable Remainder Trust",
			Description: "Income stream retained for a term of years, remainder to charity",
			RiskTier:    domain.RiskMedium,
			TimeHorizon: "years",
		},
		{
			ID:          "donor-advised-fund",
			Label:       "Donor-Advised Fund",
			Description: "Immediate deduction with grants recommended over time",
			RiskTier:    domain.RiskLow,
			TimeHorizon: "ongoing",
		},

		// Estate tax strategies
		{
			ID:          "do-nothing",
			Label:       "No Planning",
			Description: "Leave the estate exposed to tax at current rates",
			RiskTier:    domain.RiskHigh,
			TimeHorizon: "immediate",
		},
		{
			ID:          "lifetime-gifting",
			Label:       "Lifetime Gifting",
			Description: "Annual exclusion gifts move assets out of the taxable estate",
			RiskTier:    domain.RiskLow,
			TimeHorizon: "years",
		},
		{
			ID:          "irrevocable-trust",
			Label:       "Irrevocable Trust",
			Description: "Shelter a portion of the estate in an irrevocable trust",
			RiskTier:    domain.RiskMedium,
			TimeHorizon: "years",
		},
	}
}
