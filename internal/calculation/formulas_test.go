package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estateplan/epgo/internal/domain"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestTrusteeCompensationFormula(t *testing.T) {
	vars := domain.VariableAssignment{
		"trustAssets":   d("2000000"),
		"hoursPerMonth": d("10"),
		"hourlyRate":    d("150"),
		"percentageFee": d("1"),
	}

	results, err := trusteeCompensationFormula(vars)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.True(t, results["hourly"].ProjectedValue.Equal(d("18000")),
		"hourly = 10 * 12 * 150, got %s", results["hourly"].ProjectedValue)
	assert.True(t, results["percentage"].ProjectedValue.Equal(d("20000")),
		"percentage = 2000000 * 1%%, got %s", results["percentage"].ProjectedValue)
	assert.True(t, results["hybrid"].ProjectedValue.Equal(d("19000")),
		"hybrid = 2000000*0.005 + 18000*0.5, got %s", results["hybrid"].ProjectedValue)

	assert.Equal(t, 80, results["hourly"].Score)
	assert.Equal(t, 75, results["percentage"].Score)
	assert.Equal(t, 90, results["hybrid"].Score)
	assert.Equal(t, 70, results["statutory"].Score)
}

func TestStatutoryFee(t *testing.T) {
	tests := []struct {
		assets   string
		expected string
	}{
		{"50000", "2000"},       // 4% of 50k
		{"100000", "4000"},      // full first tier
		{"200000", "7000"},      // 4000 + 3000
		{"1000000", "23000"},    // 4000 + 3000 + 16000
		{"2000000", "33000"},    // + 1% of the second million
		{"0", "0"},
	}

	for _, tt := range tests {
		fee := statutoryFee(d(tt.assets))
		assert.True(t, fee.Equal(d(tt.expected)),
			"statutoryFee(%s): expected %s, got %s", tt.assets, tt.expected, fee)
	}
}

func TestSiblingDisputeFormula(t *testing.T) {
	vars := domain.VariableAssignment{
		"totalEstate":      d("1000000"),
		"numBeneficiaries": d("3"),
		"disputedAmount":   d("200000"),
		"mediationCost":    d("15000"),
	}

	results, err := siblingDisputeFormula(vars)
	require.NoError(t, err)
	require.Len(t, results, 4)

	share := d("1000000").Div(d("3"))
	assert.True(t, results["equal-split"].ProjectedValue.Equal(share),
		"equal-split must be exactly totalEstate/numBeneficiaries, got %s",
		results["equal-split"].ProjectedValue)
	assert.True(t, results["mediated"].ProjectedValue.Equal(share.Sub(d("5000"))),
		"mediated must be the equal share less mediationCost/numBeneficiaries, got %s",
		results["mediated"].ProjectedValue)

	assert.Equal(t, 70, results["equal-split"].Score)
	assert.Equal(t, 85, results["mediated"].Score)
	assert.Equal(t, 35, results["litigated"].Score)
	assert.Equal(t, 60, results["buyout"].Score)
}

func TestSiblingDisputeFormula_ZeroBeneficiaries(t *testing.T) {
	vars := domain.VariableAssignment{
		"totalEstate":      d("1000000"),
		"numBeneficiaries": d("0"),
		"disputedAmount":   d("200000"),
		"mediationCost":    d("15000"),
	}

	_, err := siblingDisputeFormula(vars)
	require.Error(t, err)

	var divByZero *domain.DivisionByZeroError
	require.ErrorAs(t, err, &divByZero)
	assert.Equal(t, "numBeneficiaries", divByZero.Variable)
}

func TestFormula_MissingVariable(t *testing.T) {
	vars := domain.VariableAssignment{
		"totalEstate": d("1000000"),
	}

	_, err := siblingDisputeFormula(vars)
	require.Error(t, err)

	var missing *domain.MissingVariableError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "numBeneficiaries", missing.Variable)
}

func TestProbateAvoidanceFormula(t *testing.T) {
	vars := domain.VariableAssignment{
		"estateValue":     d("1500000"),
		"probateCostPct":  d("4"),
		"trustSetupCost":  d("3500"),
		"annualAdminCost": d("500"),
		"adminYears":      d("10"),
	}

	results, err := probateAvoidanceFormula(vars)
	require.NoError(t, err)

	assert.True(t, results["will-only"].ProjectedValue.Equal(d("1440000")),
		"will-only = estate less 4%% probate cost, got %s", results["will-only"].ProjectedValue)
	assert.True(t, results["revocable-trust"].ProjectedValue.Equal(d("1491500")),
		"revocable-trust = estate - setup - admin, got %s", results["revocable-trust"].ProjectedValue)
	assert.True(t, results["joint-ownership"].ProjectedValue.Equal(d("1470000")))
}

func TestEstateTaxStrategyFormula_GiftsClampedToEstate(t *testing.T) {
	vars := domain.VariableAssignment{
		"taxableEstate": d("100000"),
		"estateTaxRate": d("40"),
		"annualGifts":   d("50000"),
		"planningYears": d("10"),
	}

	results, err := estateTaxStrategyFormula(vars)
	require.NoError(t, err)

	// Everything can be gifted away, so the full estate passes untaxed.
	assert.True(t, results["lifetime-gifting"].ProjectedValue.Equal(d("100000")),
		"gifting more than the estate must clamp, got %s",
		results["lifetime-gifting"].ProjectedValue)
}
