package domain

import "fmt"

// NotFoundError reports a lookup against an unknown scenario, outcome or run id.
type NotFoundError struct {
	Kind string // "scenario", "outcome" or "run"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// MissingVariableError reports a formula referencing a variable the caller
// never supplied. This is a programming error on the caller's side: all
// declared variables must be seeded before computing.
type MissingVariableError struct {
	ScenarioID string
	Variable   string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("scenario %s: variable %q missing from assignment", e.ScenarioID, e.Variable)
}

// DivisionByZeroError reports a zero denominator variable reaching a formula.
type DivisionByZeroError struct {
	ScenarioID string
	Variable   string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("scenario %s: variable %q is zero and would divide by zero", e.ScenarioID, e.Variable)
}

// EmptyResultError reports ranking over an empty outcome set. The catalog
// rejects scenarios with no outcomes at load time, so this indicates a
// violated invariant rather than a user mistake.
type EmptyResultError struct {
	ScenarioID string
}

func (e *EmptyResultError) Error() string {
	if e.ScenarioID == "" {
		return "no outcome results to rank"
	}
	return fmt.Sprintf("scenario %s produced no outcome results", e.ScenarioID)
}

// StoreError wraps a run store persistence failure. Save failures are
// non-fatal: the computed results stay valid and saving can be retried.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("run store %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("run store %s failed", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
