package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/estateplan/epgo/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable scenario variable with a visual
// slider. Values stay decimals end to end so the engine sees exactly what
// the slider shows.
type ParameterSlider struct {
	Name      string // variable name in the assignment
	Label     string
	Value     decimal.Decimal
	Min       decimal.Decimal
	Max       decimal.Decimal
	Step      decimal.Decimal
	Width     int
	IsFocused bool

	// FormatValue renders the value for display (currency, percent, count).
	FormatValue func(decimal.Decimal) string
}

// NewParameterSlider creates a new parameter slider.
func NewParameterSlider(name, label string, value, min, max, step decimal.Decimal) *ParameterSlider {
	return &ParameterSlider{
		Name:  name,
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		Step:  step,
		Width: 40,
		FormatValue: func(v decimal.Decimal) string {
			return v.String()
		},
	}
}

// WithWidth sets the slider bar width.
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// WithFormatter sets the value display function.
func (p *ParameterSlider) WithFormatter(format func(decimal.Decimal) string) *ParameterSlider {
	p.FormatValue = format
	return p
}

// SetFocused sets the focus state.
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment increases the value by one step, capped at Max.
func (p *ParameterSlider) Increment() {
	next := p.Value.Add(p.Step)
	if next.LessThanOrEqual(p.Max) {
		p.Value = next
	}
}

// Decrement decreases the value by one step, floored at Min.
func (p *ParameterSlider) Decrement() {
	next := p.Value.Sub(p.Step)
	if next.GreaterThanOrEqual(p.Min) {
		p.Value = next
	}
}

// SetValue sets the value directly, clamping to the slider range.
func (p *ParameterSlider) SetValue(value decimal.Decimal) {
	p.Value = decimal.Max(p.Min, decimal.Min(p.Max, value))
}

// ratio returns the value's position in the range as [0, 1].
func (p *ParameterSlider) ratio() float64 {
	span := p.Max.Sub(p.Min)
	if span.IsZero() {
		return 0
	}
	return p.Value.Sub(p.Min).Div(span).InexactFloat64()
}

// Render returns the styled slider.
func (p *ParameterSlider) Render() string {
	var sb strings.Builder

	label := tuistyles.ParameterLabelStyle.Render(p.Label)
	value := tuistyles.ParameterValueStyle.Render(p.FormatValue(p.Value))
	if p.IsFocused {
		label = tuistyles.SelectedItemStyle.Render("> " + p.Label)
	} else {
		label = "  " + label
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, "  ", value))
	sb.WriteString("\n")

	filled := int(p.ratio() * float64(p.Width))
	if filled > p.Width {
		filled = p.Width
	}
	track := tuistyles.SliderThumbStyle.Render(strings.Repeat("█", filled)) +
		tuistyles.SliderTrackStyle.Render(strings.Repeat("░", p.Width-filled))
	sb.WriteString("  " + track)

	return sb.String()
}
