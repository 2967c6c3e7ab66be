package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/estateplan/epgo/internal/tui/tuistyles"
)

// OutcomeCard displays one ranked outcome: label, projected value, score bar
// and qualitative tags.
type OutcomeCard struct {
	Label          string
	ProjectedValue string
	Recommendation string
	Score          int
	RiskTier       string
	TimeHorizon    string
	IsBest         bool
	Width          int
}

// NewOutcomeCard creates a new outcome card.
func NewOutcomeCard(label string) *OutcomeCard {
	return &OutcomeCard{
		Label: label,
		Width: 56,
	}
}

// Render returns the styled card.
func (c *OutcomeCard) Render() string {
	var sb strings.Builder

	var title string
	if c.IsBest {
		title = tuistyles.BestStyle.Render("★ " + c.Label + "  (recommended)")
	} else {
		title = tuistyles.UnselectedItemStyle.Render(c.Label)
	}
	sb.WriteString(title + "\n")

	value := tuistyles.ParameterValueStyle.Render(c.ProjectedValue)
	risk := tuistyles.RiskStyle(c.RiskTier).Render(c.RiskTier)
	sb.WriteString(fmt.Sprintf("%s   risk: %s   horizon: %s\n", value, risk, c.TimeHorizon))

	sb.WriteString(scoreBar(c.Score, 25) + fmt.Sprintf(" %d/100\n", c.Score))
	sb.WriteString(tuistyles.HelpDescStyle.Render(c.Recommendation))

	style := tuistyles.BorderStyle
	if c.IsBest {
		style = tuistyles.ActiveBorderStyle
	}
	return style.Width(c.Width).Render(sb.String())
}

func scoreBar(score, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100
	bar := tuistyles.SliderThumbStyle.Render(strings.Repeat("█", filled)) +
		tuistyles.SliderTrackStyle.Render(strings.Repeat("░", width-filled))
	return lipgloss.NewStyle().Render(bar)
}
