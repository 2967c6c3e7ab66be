package tui

import (
	"github.com/estateplan/epgo/internal/domain"
)

// Scene represents the different screens in the TUI.
type Scene int

const (
	SceneScenarios Scene = iota
	SceneParameters
	SceneResults
	SceneHistory
)

func (s Scene) String() string {
	switch s {
	case SceneScenarios:
		return "Scenarios"
	case SceneParameters:
		return "Parameters"
	case SceneResults:
		return "Results"
	case SceneHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle.

// ResultsMsg delivers a finished calculation. Seq identifies the request;
// stale results (user already navigated or re-edited) are discarded.
type ResultsMsg struct {
	Seq        int
	ScenarioID string
	Outcomes   []domain.OutcomeResult // ranked best-first
	Best       domain.OutcomeResult
	Err        error
}

// RunSavedMsg reports the result of persisting a run.
type RunSavedMsg struct {
	Run *domain.ScenarioRun
	Err error
}

// RunDeletedMsg reports the result of deleting a run.
type RunDeletedMsg struct {
	RunID string
	Err   error
}
