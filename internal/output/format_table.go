package output

import (
	"fmt"
	"strings"

	"github.com/estateplan/epgo/internal/domain"
)

// TableFormatter renders results as a console table.
type TableFormatter struct{}

// Format generates a formatted table of ranked outcomes for one calculation.
func (tf *TableFormatter) Format(rs *ResultSet) (string, error) {
	var sb strings.Builder

	sb.WriteString(strings.ToUpper(rs.Scenario.Title) + "\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")

	// Inputs, in declared order
	for _, vs := range rs.Scenario.Variables {
		value, ok := rs.Variables[vs.Name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-24s %s\n", vs.Label+":", FormatVariable(vs, value)))
	}
	sb.WriteString("\n")

	nameWidth := 26
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %6s  %-8s %s\n",
		nameWidth, "Outcome",
		numWidth, "Projected Value",
		"Score",
		"Risk",
		"Horizon"))
	sb.WriteString(strings.Repeat("-", 78) + "\n")

	for i, result := range rs.Outcomes {
		od := rs.Describe(result.OutcomeID)
		marker := "  "
		if i == 0 {
			marker = "* "
		}
		sb.WriteString(fmt.Sprintf("%s%-*s %*s %6d  %-8s %s\n",
			marker,
			nameWidth-2, od.Label,
			numWidth, FormatCurrency(result.ProjectedValue),
			result.Score,
			od.RiskTier,
			od.TimeHorizon))
	}
	sb.WriteString(strings.Repeat("=", 78) + "\n\n")

	best := rs.Describe(rs.Best.OutcomeID)
	sb.WriteString(fmt.Sprintf("RECOMMENDED: %s (score %d)\n", best.Label, rs.Best.Score))
	sb.WriteString("  " + rs.Best.Recommendation + "\n")

	return sb.String(), nil
}

// FormatRunTable renders saved runs as a console table, most recent first.
func FormatRunTable(runs []domain.ScenarioRun) string {
	var sb strings.Builder

	sb.WriteString("SAVED RUNS\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")

	if len(runs) == 0 {
		sb.WriteString("  (none)\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%-38s %-22s %-20s %-14s %s\n",
		"Run ID", "Scenario", "Saved", "Best", "Projected"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	for _, run := range runs {
		sb.WriteString(fmt.Sprintf("%-38s %-22s %-20s %-14s %s\n",
			run.ID,
			run.ScenarioID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.BestOption.OutcomeID,
			FormatCurrency(run.BestOption.ProjectedValue)))
	}
	sb.WriteString(strings.Repeat("=", 96) + "\n")

	return sb.String()
}
