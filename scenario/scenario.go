// Package scenario supplies named parameter bundles for the model
// variants and yaml load/save of user-defined runs.
package scenario

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxTime = 160.0
	DefaultSteps   = 160
)

// Scenario pairs a model with a full parameterization. The core does
// not check which model a scenario "belongs" to; mismatched keys
// surface from the solver at run time.
type Scenario struct {
	Name              string             `yaml:"name"`
	Model             string             `yaml:"model"`
	Description       string             `yaml:"description"`
	Params            map[string]float64 `yaml:"params"`
	InitialConditions map[string]float64 `yaml:"initial_conditions"`
	MaxTime           float64            `yaml:"max_time"`
	Steps             int                `yaml:"steps"`
}

// Clone returns a deep copy, so that parameter and initial-condition
// overlays on the copy never write through to the original maps.
func (sc *Scenario) Clone() *Scenario {
	out := *sc
	out.Params = make(map[string]float64, len(sc.Params))
	for k, v := range sc.Params {
		out.Params[k] = v
	}
	out.InitialConditions = make(map[string]float64, len(sc.InitialConditions))
	for k, v := range sc.InitialConditions {
		out.InitialConditions[k] = v
	}
	return &out
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := &Scenario{MaxTime: DefaultMaxTime, Steps: DefaultSteps}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
