package output

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter renders results as CSV, one row per ranked outcome.
type CSVFormatter struct{}

// Format generates CSV output for a result set.
func (cf *CSVFormatter) Format(rs *ResultSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Outcome",
		"Label",
		"Projected Value",
		"Score",
		"Risk",
		"Time Horizon",
		"Recommended",
		"Recommendation",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, result := range rs.Outcomes {
		od := rs.Describe(result.OutcomeID)
		recommended := "no"
		if result.OutcomeID == rs.Best.OutcomeID {
			recommended = "yes"
		}
		row := []string{
			rs.Scenario.ID,
			result.OutcomeID,
			od.Label,
			result.ProjectedValue.StringFixed(2),
			strconv.Itoa(result.Score),
			string(od.RiskTier),
			od.TimeHorizon,
			recommended,
			result.Recommendation,
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
