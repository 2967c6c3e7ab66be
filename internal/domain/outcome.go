package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskTier is a qualitative risk rating for an outcome strategy.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// OutcomeDescriptor holds the display metadata for one outcome strategy.
// Descriptors are process-wide and immutable once the catalog is built.
type OutcomeDescriptor struct {
	ID          string   `json:"id" yaml:"id"`
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
	RiskTier    RiskTier `json:"riskTier" yaml:"risk"`
	TimeHorizon string   `json:"timeHorizon" yaml:"horizon"`
}

// OutcomeResult is the computed projection for one outcome of one run.
// Results are values, never mutated; a recalculation produces a new set.
type OutcomeResult struct {
	OutcomeID      string          `json:"outcomeId"`
	ProjectedValue decimal.Decimal `json:"projectedValue"`
	Recommendation string          `json:"recommendation"`
	Score          int             `json:"score"`
}

// ScenarioRun is a saved, timestamped snapshot of one completed calculation.
// Runs are owned by the run store, which caps retention at MaxRuns.
type ScenarioRun struct {
	ID         string             `json:"id"`
	ScenarioID string             `json:"scenarioId"`
	Timestamp  time.Time          `json:"timestamp"`
	Variables  VariableAssignment `json:"variables"`
	Outcomes   []OutcomeResult    `json:"outcomes"`
	BestOption OutcomeResult      `json:"bestOption"`
}
