package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/estateplan/epgo/internal/calculation"
	"github.com/estateplan/epgo/internal/domain"
	"github.com/estateplan/epgo/internal/runstore"
)

var (
	keyUp     = key.NewBinding(key.WithKeys("up", "k"))
	keyDown   = key.NewBinding(key.WithKeys("down", "j"))
	keyLeft   = key.NewBinding(key.WithKeys("left", "h"))
	keyRight  = key.NewBinding(key.WithKeys("right", "l"))
	keySelect = key.NewBinding(key.WithKeys("enter"))
	keyBack   = key.NewBinding(key.WithKeys("esc"))
	keyEdit   = key.NewBinding(key.WithKeys("e"))
	keySave   = key.NewBinding(key.WithKeys("s"))
	keyDelete = key.NewBinding(key.WithKeys("d"))
	keyRuns   = key.NewBinding(key.WithKeys("r"))
	keyQuit   = key.NewBinding(key.WithKeys("q", "ctrl+c"))
)

// Update handles all messages for the application.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResultsMsg:
		if msg.Seq != m.calcSeq {
			// A newer calculation superseded this one, or the user
			// navigated away; drop the stale result.
			return m, nil
		}
		m.calculating = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.results = msg.Outcomes
		m.best = msg.Best
		m.currentScene = SceneResults
		return m, nil

	case RunSavedMsg:
		if msg.Err != nil {
			m.statusMsg = "save failed: " + msg.Err.Error() + " (press s to retry)"
			return m, nil
		}
		m.statusMsg = "saved run " + msg.Run.ID
		return m, nil

	case RunDeletedMsg:
		if msg.Err != nil {
			m.statusMsg = "delete failed: " + msg.Err.Error()
			return m, nil
		}
		m.runs = m.store.List()
		if m.selectedRun >= len(m.runs) && m.selectedRun > 0 {
			m.selectedRun--
		}
		m.statusMsg = "deleted run " + msg.RunID
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	if key.Matches(msg, keyQuit) {
		return m, tea.Quit
	}

	switch m.currentScene {
	case SceneScenarios:
		return m.handleScenariosKey(msg)
	case SceneParameters:
		return m.handleParametersKey(msg)
	case SceneResults:
		return m.handleResultsKey(msg)
	case SceneHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m Model) handleScenariosKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyUp):
		if m.selectedScenario > 0 {
			m.selectedScenario--
		}
	case key.Matches(msg, keyDown):
		if m.selectedScenario < len(m.scenarios)-1 {
			m.selectedScenario++
		}
	case key.Matches(msg, keySelect):
		sd := m.scenarios[m.selectedScenario]
		m.selectScenario(&sd)
		m.currentScene = SceneParameters
	case key.Matches(msg, keyRuns):
		if m.store != nil {
			m.runs = m.store.List()
			m.selectedRun = 0
			m.currentScene = SceneHistory
		}
	}
	return m, nil
}

func (m Model) handleParametersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, keyUp):
		m.sliders[m.focusedSlider].SetFocused(false)
		if m.focusedSlider > 0 {
			m.focusedSlider--
		}
		m.sliders[m.focusedSlider].SetFocused(true)

	case key.Matches(msg, keyDown):
		m.sliders[m.focusedSlider].SetFocused(false)
		if m.focusedSlider < len(m.sliders)-1 {
			m.focusedSlider++
		}
		m.sliders[m.focusedSlider].SetFocused(true)

	case key.Matches(msg, keyLeft):
		m.sliders[m.focusedSlider].Decrement()

	case key.Matches(msg, keyRight):
		m.sliders[m.focusedSlider].Increment()

	case key.Matches(msg, keyEdit):
		m.editing = true
		m.editInput.SetValue("")
		m.editInput.Placeholder = m.sliders[m.focusedSlider].FormatValue(m.sliders[m.focusedSlider].Value)
		m.editInput.Focus()
		return m, nil

	case key.Matches(msg, keySelect):
		m.syncVars()
		m.calcSeq++
		m.calculating = true
		m.err = nil
		return m, calculateCmd(m.engine, m.active.ID, m.vars.Clone(), m.calcSeq)

	case key.Matches(msg, keyBack):
		m.currentScene = SceneScenarios
		// Abandon any in-flight calculation.
		m.calcSeq++
		m.calculating = false
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keySelect):
		slider := m.sliders[m.focusedSlider]
		spec, ok := m.active.Variable(slider.Name)
		if ok {
			value, err := spec.Parse(m.editInput.Value())
			if err != nil {
				m.statusMsg = err.Error()
			} else {
				slider.SetValue(value)
				m.statusMsg = ""
			}
		}
		m.editing = false
		m.editInput.Blur()
		return m, nil

	case key.Matches(msg, keyBack):
		m.editing = false
		m.editInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keySave):
		if m.store != nil && len(m.results) > 0 {
			return m, saveRunCmd(m.store, m.active.ID, m.vars.Clone(), m.results, m.best)
		}
	case key.Matches(msg, keyBack):
		m.currentScene = SceneParameters
		m.statusMsg = ""
	case key.Matches(msg, keyRuns):
		if m.store != nil {
			m.runs = m.store.List()
			m.selectedRun = 0
			m.currentScene = SceneHistory
		}
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyUp):
		if m.selectedRun > 0 {
			m.selectedRun--
		}
	case key.Matches(msg, keyDown):
		if m.selectedRun < len(m.runs)-1 {
			m.selectedRun++
		}
	case key.Matches(msg, keyDelete):
		if len(m.runs) > 0 {
			return m, deleteRunCmd(m.store, m.runs[m.selectedRun].ID)
		}
	case key.Matches(msg, keyBack):
		m.currentScene = SceneScenarios
		m.statusMsg = ""
	}
	return m, nil
}

// calculateCmd runs the engine off the UI goroutine and tags the result with
// a sequence number so superseded calculations are discarded.
func calculateCmd(engine *calculation.Engine, scenarioID string, vars domain.VariableAssignment, seq int) tea.Cmd {
	return func() tea.Msg {
		outcomes, err := engine.ComputeOutcomes(scenarioID, vars)
		if err != nil {
			return ResultsMsg{Seq: seq, ScenarioID: scenarioID, Err: err}
		}
		ranked := calculation.Rank(outcomes)
		best, err := calculation.SelectBest(ranked)
		if err != nil {
			return ResultsMsg{Seq: seq, ScenarioID: scenarioID, Err: err}
		}
		return ResultsMsg{Seq: seq, ScenarioID: scenarioID, Outcomes: ranked, Best: best}
	}
}

func saveRunCmd(store *runstore.Store, scenarioID string, vars domain.VariableAssignment, outcomes []domain.OutcomeResult, best domain.OutcomeResult) tea.Cmd {
	return func() tea.Msg {
		run, err := store.Save(scenarioID, vars, outcomes, best)
		return RunSavedMsg{Run: run, Err: err}
	}
}

func deleteRunCmd(store *runstore.Store, runID string) tea.Cmd {
	return func() tea.Msg {
		return RunDeletedMsg{RunID: runID, Err: store.Delete(runID)}
	}
}
