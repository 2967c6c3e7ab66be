// Package tuistyles centralizes lipgloss styles shared by the TUI scenes
// and components.
package tuistyles

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("39")  // blue
	ColorAccent    = lipgloss.Color("212") // pink
	ColorSuccess   = lipgloss.Color("42")  // green
	ColorDanger    = lipgloss.Color("196") // red
	ColorWarning   = lipgloss.Color("214") // orange
	ColorMuted     = lipgloss.Color("241") // gray
	ColorForeground = lipgloss.Color("252")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)

	BestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)
)

// RiskStyle maps a qualitative risk tier to a colored style.
func RiskStyle(tier string) lipgloss.Style {
	switch tier {
	case "low":
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case "high":
		return lipgloss.NewStyle().Foreground(ColorDanger)
	default:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	}
}
