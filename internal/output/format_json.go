package output

import (
	"encoding/json"

	"github.com/estateplan/epgo/internal/domain"
)

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// resultSetView is the serialized shape of a calculation result.
type resultSetView struct {
	ScenarioID string                    `json:"scenarioId"`
	Title      string                    `json:"title"`
	Variables  domain.VariableAssignment `json:"variables"`
	Outcomes   []domain.OutcomeResult    `json:"outcomes"`
	BestOption domain.OutcomeResult      `json:"bestOption"`
}

// Format generates JSON output for a result set.
func (jf *JSONFormatter) Format(rs *ResultSet) (string, error) {
	view := resultSetView{
		ScenarioID: rs.Scenario.ID,
		Title:      rs.Scenario.Title,
		Variables:  rs.Variables,
		Outcomes:   rs.Outcomes,
		BestOption: rs.Best,
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(view, "", "  ")
	} else {
		data, err = json.Marshal(view)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
