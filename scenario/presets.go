package scenario

import "sort"

// Population of Sao Paulo State (2024 est).
const popSP = 45_973_194

var presets = map[string]*Scenario{
	"covid-sp": {
		Name:        "covid-sp",
		Model:       "sir",
		Description: "Approximation of COVID-19 in SP. R0 ~ 3.1, infectious period ~ 7 days. Population ~46 million.",
		Params: map[string]float64{
			"beta":  0.44, // 3.1 * (1/7)
			"gamma": 0.14, // 1/7
		},
		InitialConditions: map[string]float64{
			"S": 1.0 - 1000.0/popSP,
			"I": 1000.0 / popSP,
			"R": 0.0,
		},
		MaxTime: DefaultMaxTime,
		Steps:   DefaultSteps,
	},
	"influenza-sp": {
		Name:        "influenza-sp",
		Model:       "sir",
		Description: "Seasonal flu scenario. R0 ~ 1.3, infectious period ~ 5 days.",
		Params: map[string]float64{
			"beta":  0.26, // 1.3 * 0.2
			"gamma": 0.2,  // 1/5
		},
		InitialConditions: map[string]float64{
			"S": 1.0 - 500.0/popSP,
			"I": 500.0 / popSP,
			"R": 0.0,
		},
		MaxTime: DefaultMaxTime,
		Steps:   DefaultSteps,
	},
	"rsv-sp": {
		Name:        "rsv-sp",
		Model:       "sir",
		Description: "RSV scenario (children/elderly impact). R0 ~ 3.0, infectious period ~ 7 days.",
		Params: map[string]float64{
			"beta":  0.43,  // 3.0 * 0.143
			"gamma": 0.143, // 1/7
		},
		InitialConditions: map[string]float64{
			"S": 1.0 - 200.0/popSP,
			"I": 200.0 / popSP,
			"R": 0.0,
		},
		MaxTime: DefaultMaxTime,
		Steps:   DefaultSteps,
	},
}

// Get returns the named preset, or nil when unknown. The result is an
// independent copy; callers may overlay overrides without contaminating
// later lookups.
func Get(name string) *Scenario {
	sc, ok := presets[name]
	if !ok {
		return nil
	}
	return sc.Clone()
}

// Names lists the built-in presets, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
