package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/estateplan/epgo/internal/domain"
)

// catalogFile is the YAML shape for user-defined scenarios and outcomes.
type catalogFile struct {
	Scenarios []domain.ScenarioDefinition `yaml:"scenarios"`
	Outcomes  []domain.OutcomeDescriptor  `yaml:"outcomes"`
}

// LoadFile reads user-defined scenarios from a YAML file and merges them with
// the built-ins. File scenarios have no registered formula, so the engine
// evaluates them with its documented fallback; that is the supported way to
// sketch a new scenario before writing its formula.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	defs := append(builtinScenarios(), file.Scenarios...)
	outcomes := append(builtinOutcomes(), file.Outcomes...)

	c, err := New(defs, outcomes)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
