// Package tui is the interactive terminal frontend: browse scenarios, adjust
// variables with sliders, run the calculation and review or save runs.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/estateplan/epgo/internal/calculation"
	"github.com/estateplan/epgo/internal/catalog"
	"github.com/estateplan/epgo/internal/domain"
	"github.com/estateplan/epgo/internal/output"
	"github.com/estateplan/epgo/internal/runstore"
	"github.com/estateplan/epgo/internal/tui/components"
)

// Model is the application state for the TUI.
type Model struct {
	currentScene Scene

	width  int
	height int

	catalog *catalog.Catalog
	engine  *calculation.Engine
	store   *runstore.Store

	// Scenario browser
	scenarios        []domain.ScenarioDefinition
	selectedScenario int

	// Parameter editing
	active        *domain.ScenarioDefinition
	vars          domain.VariableAssignment
	sliders       []*components.ParameterSlider
	focusedSlider int
	editing       bool
	editInput     textinput.Model

	// Calculation results
	calcSeq     int
	calculating bool
	results     []domain.OutcomeResult
	best        domain.OutcomeResult

	// Saved runs
	runs        []domain.ScenarioRun
	selectedRun int

	statusMsg string
	err       error
}

// NewModel creates the application model. The store may be nil, which
// disables saving.
func NewModel(cat *catalog.Catalog, engine *calculation.Engine, store *runstore.Store) Model {
	input := textinput.New()
	input.CharLimit = 24
	input.Width = 20

	return Model{
		currentScene: SceneScenarios,
		catalog:      cat,
		engine:       engine,
		store:        store,
		scenarios:    cat.List(),
		editInput:    input,
		width:        80,
		height:       24,
	}
}

// Init is required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// selectScenario resets the live assignment to catalog defaults and builds
// sliders for every declared variable. Switching scenarios always discards
// prior edits.
func (m *Model) selectScenario(sd *domain.ScenarioDefinition) {
	m.active = sd
	m.vars = sd.DefaultAssignment()
	m.sliders = make([]*components.ParameterSlider, 0, len(sd.Variables))
	m.focusedSlider = 0
	m.results = nil
	m.statusMsg = ""

	for _, vs := range sd.Variables {
		m.sliders = append(m.sliders, buildSlider(vs))
	}
	if len(m.sliders) > 0 {
		m.sliders[0].SetFocused(true)
	}
}

// buildSlider derives slider bounds and step from the variable type.
func buildSlider(vs domain.VariableSpec) *components.ParameterSlider {
	spec := vs
	var min, max, step decimal.Decimal

	switch vs.Type {
	case domain.VarPercentage:
		min = decimal.Zero
		max = decimal.NewFromInt(domain.PercentageSliderMax)
		if vs.Default.GreaterThan(max) {
			max = vs.Default
		}
		step = decimal.NewFromFloat(0.5)
	case domain.VarCount:
		min = decimal.Zero
		max = decimal.Max(vs.Default.Mul(decimal.NewFromInt(3)), decimal.NewFromInt(10))
		step = decimal.NewFromInt(1)
	default: // currency
		min = decimal.Zero
		max = decimal.Max(vs.Default.Mul(decimal.NewFromInt(4)), decimal.NewFromInt(1000))
		step = max.Div(decimal.NewFromInt(40)).Round(0)
		if step.IsZero() {
			step = decimal.NewFromInt(1)
		}
	}

	return components.NewParameterSlider(vs.Name, vs.Label, vs.Default, min, max, step).
		WithWidth(40).
		WithFormatter(func(v decimal.Decimal) string {
			return output.FormatVariable(spec, v)
		})
}

// syncVars copies slider values into the live assignment.
func (m *Model) syncVars() {
	for _, slider := range m.sliders {
		m.vars[slider.Name] = slider.Value
	}
}
