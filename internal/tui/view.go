package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/estateplan/epgo/internal/output"
	"github.com/estateplan/epgo/internal/tui/components"
	"github.com/estateplan/epgo/internal/tui/tuistyles"
)

// View renders the current state of the application.
func (m Model) View() string {
	var content string
	switch m.currentScene {
	case SceneScenarios:
		content = m.renderScenarios()
	case SceneParameters:
		content = m.renderParameters()
	case SceneResults:
		content = m.renderResults()
	case SceneHistory:
		content = m.renderHistory()
	default:
		content = "Unknown scene"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("Estate Scenario Planner")
	breadcrumb := m.currentScene.String()
	if m.active != nil && m.currentScene != SceneScenarios {
		breadcrumb = fmt.Sprintf("%s / %s", m.currentScene.String(), m.active.Title)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, tuistyles.SubtitleStyle.Render(breadcrumb))
}

func (m Model) renderStatusBar() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("error: " + m.err.Error())
	}
	if m.statusMsg != "" {
		return tuistyles.StatusBarStyle.Render(m.statusMsg)
	}

	var help []string
	switch m.currentScene {
	case SceneScenarios:
		help = []string{"↑/↓ select", "enter open", "r runs", "q quit"}
	case SceneParameters:
		if m.editing {
			help = []string{"enter apply", "esc cancel"}
		} else {
			help = []string{"↑/↓ focus", "←/→ adjust", "e edit value", "enter calculate", "esc back"}
		}
	case SceneResults:
		help = []string{"s save", "r runs", "esc adjust", "q quit"}
	case SceneHistory:
		help = []string{"↑/↓ select", "d delete", "esc back", "q quit"}
	}

	parts := make([]string, len(help))
	for i, h := range help {
		fields := strings.SplitN(h, " ", 2)
		parts[i] = tuistyles.HelpKeyStyle.Render(fields[0]) + " " + tuistyles.HelpDescStyle.Render(fields[1])
	}
	return strings.Join(parts, "   ")
}

func (m Model) renderScenarios() string {
	var sb strings.Builder
	sb.WriteString("\n")

	for i, sd := range m.scenarios {
		line := fmt.Sprintf("%s  %s", sd.Title, tuistyles.HelpDescStyle.Render(sd.Category))
		if i == m.selectedScenario {
			sb.WriteString(tuistyles.SelectedItemStyle.Render("> "+line) + "\n")
			sb.WriteString("    " + tuistyles.HelpDescStyle.Render(sd.Description) + "\n")
		} else {
			sb.WriteString(tuistyles.UnselectedItemStyle.Render("  "+line) + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderParameters() string {
	var sb strings.Builder
	sb.WriteString("\n")

	for _, slider := range m.sliders {
		sb.WriteString(slider.Render() + "\n\n")
	}

	if m.editing {
		sb.WriteString("  New value: " + m.editInput.View() + "\n")
	}
	if m.calculating {
		sb.WriteString(tuistyles.SubtitleStyle.Render("  calculating...") + "\n")
	}
	return sb.String()
}

func (m Model) renderResults() string {
	if m.active == nil || len(m.results) == 0 {
		return "\n  no results yet\n"
	}

	cards := make([]string, 0, len(m.results))
	for _, result := range m.results {
		card := components.NewOutcomeCard(result.OutcomeID)
		if od, err := m.catalog.DescribeOutcome(result.OutcomeID); err == nil {
			card.Label = od.Label
			card.RiskTier = string(od.RiskTier)
			card.TimeHorizon = od.TimeHorizon
		}
		card.ProjectedValue = output.FormatCurrency(result.ProjectedValue)
		card.Recommendation = result.Recommendation
		card.Score = result.Score
		card.IsBest = result.OutcomeID == m.best.OutcomeID
		cards = append(cards, card.Render())
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, cards...) + "\n"
}

func (m Model) renderHistory() string {
	var sb strings.Builder
	sb.WriteString("\n")

	if len(m.runs) == 0 {
		sb.WriteString("  no saved runs\n")
		return sb.String()
	}

	for i, run := range m.runs {
		line := fmt.Sprintf("%-22s %s  best: %s (%s)",
			run.ScenarioID,
			run.Timestamp.Format("2006-01-02 15:04"),
			run.BestOption.OutcomeID,
			output.FormatCurrency(run.BestOption.ProjectedValue))
		if i == m.selectedRun {
			sb.WriteString(tuistyles.SelectedItemStyle.Render("> "+line) + "\n")
		} else {
			sb.WriteString(tuistyles.UnselectedItemStyle.Render("  "+line) + "\n")
		}
	}
	return sb.String()
}
