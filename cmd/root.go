package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caiosainvallio/simulations/epidemic"
	"github.com/caiosainvallio/simulations/metrics"
	"github.com/caiosainvallio/simulations/models"
	"github.com/caiosainvallio/simulations/scenario"
	"github.com/caiosainvallio/simulations/solver"
	"github.com/caiosainvallio/simulations/store"
)

var (
	// CLI flags shared across subcommands
	logLevel     string   // Log verbosity level
	maxTime      float64  // Simulated horizon in days
	stepCount    int      // Number of trajectory samples
	scenarioName string   // Built-in scenario preset name
	scenarioFile string   // Path to a scenario yaml file
	paramFlags   []string // Parameter overrides as key=value
	icFlags      []string // Initial condition overrides as key=value
	plotComp     string   // Compartment to plot after a run
	jsonPath     string   // JSON export destination
	csvPath      string   // CSV export destination
	showEdges    bool     // Print flow topology under each model
	liveDt       float64  // Integration timestep per live frame
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "simlab",
	Short: "Compartmental epidemic simulation lab",
}

// runCmd solves a model on a fixed grid and prints metrics and a plot
var runCmd = &cobra.Command{
	Use:   "run [model]",
	Short: "Run a simulation and report epidemic metrics",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		model, params, initial, sc, err := resolveRun(args)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		scLabel := ""
		if sc != nil {
			scLabel = sc.Name
			if !cmd.Flags().Changed("time") && sc.MaxTime > 0 {
				maxTime = sc.MaxTime
			}
			if !cmd.Flags().Changed("steps") && sc.Steps >= 2 {
				stepCount = sc.Steps
			}
		}

		if gap := solver.NormalizationGap(initial); gap > 1e-6 {
			logrus.Warnf("initial conditions deviate from a unit total by %.3g; values are treated as raw counts", gap)
		}

		engine := solver.New(model)
		tr, err := engine.Solve(initial, params, maxTime, stepCount)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		report, err := metrics.Summarize(model, params, tr)
		if err != nil {
			logrus.Fatalf("metrics failed: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "model\t%s\n", model.Name())
		if scLabel != "" {
			fmt.Fprintf(w, "scenario\t%s\n", scLabel)
		}
		fmt.Fprintf(w, "R0\t%.2f\n", report.R0)
		fmt.Fprintf(w, "Rt (end)\t%.2f\n", report.RtEnd)
		fmt.Fprintf(w, "peak day\t%.1f\n", report.Peak.Time)
		fmt.Fprintf(w, "peak infected\t%.2f%%\n", report.Peak.Value*100)
		fmt.Fprintf(w, "attack rate\t%.2f%%\n", report.AttackRate*100)
		w.Flush()

		if plotComp != "" {
			idx := -1
			for i, c := range model.Compartments() {
				if c == plotComp {
					idx = i
					break
				}
			}
			if idx < 0 {
				logrus.Fatalf("model %s has no compartment %q", model.Name(), plotComp)
			}
			graph := asciigraph.Plot(tr.Series(idx),
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("%s over %.0f days", plotComp, maxTime)),
			)
			fmt.Println()
			fmt.Println(graph)
		}

		if jsonPath != "" {
			summary := map[string]float64{
				"r0":            report.R0,
				"rt_end":        report.RtEnd,
				"peak_day":      report.Peak.Time,
				"peak_infected": report.Peak.Value,
				"attack_rate":   report.AttackRate,
			}
			if err := store.ExportJSON(jsonPath, model, scLabel, params, tr, summary); err != nil {
				logrus.Fatalf("json export failed: %v", err)
			}
			logrus.Infof("wrote %s", jsonPath)
		}
		if csvPath != "" {
			if err := store.ExportCSV(csvPath, model, tr); err != nil {
				logrus.Fatalf("csv export failed: %v", err)
			}
			logrus.Infof("wrote %s", csvPath)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the --log flag to the global logrus level
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveRun merges scenario, model defaults and flag overrides into a
// ready-to-solve configuration. The returned scenario is nil for plain
// model runs.
func resolveRun(args []string) (epidemic.Model, epidemic.Params, map[string]float64, *scenario.Scenario, error) {
	var sc *scenario.Scenario
	switch {
	case scenarioFile != "":
		loaded, err := scenario.Load(scenarioFile)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		sc = loaded
	case scenarioName != "":
		sc = scenario.Get(scenarioName)
		if sc == nil {
			return nil, nil, nil, nil, fmt.Errorf("unknown scenario: %s (try 'simlab scenarios')", scenarioName)
		}
	}

	name := ""
	if sc != nil {
		name = sc.Model
	}
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return nil, nil, nil, nil, fmt.Errorf("model name required (try 'simlab models')")
	}

	model, err := models.New(strings.ToLower(name))
	if err != nil {
		return nil, nil, nil, nil, err
	}

	params := model.DefaultParams()
	initial := model.DefaultInitialConditions()
	if sc != nil {
		for k, v := range sc.Params {
			params[k] = v
		}
		if len(sc.InitialConditions) > 0 {
			initial = sc.InitialConditions
		}
	}

	overrides, err := parseAssignments(paramFlags)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	for k, v := range overrides {
		params[k] = v
	}

	icOverrides, err := parseAssignments(icFlags)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	for k, v := range icOverrides {
		initial[k] = v
	}

	return model, params, initial, sc, nil
}

// parseAssignments turns repeated key=value flags into a map
func parseAssignments(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value in %q: %w", pair, err)
		}
		out[strings.TrimSpace(key)] = v
	}
	return out, nil
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Float64Var(&maxTime, "time", scenario.DefaultMaxTime, "Simulated horizon in days")
	runCmd.Flags().IntVar(&stepCount, "steps", scenario.DefaultSteps, "Number of trajectory samples")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Built-in scenario preset")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "Scenario yaml file")
	runCmd.Flags().StringArrayVar(&paramFlags, "set", nil, "Parameter override key=value")
	runCmd.Flags().StringArrayVar(&icFlags, "ic", nil, "Initial condition override key=value")
	runCmd.Flags().StringVar(&plotComp, "plot", "I", "Compartment to plot")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "Export run to a json file")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Export trajectory to a csv file")

	rootCmd.AddCommand(runCmd)
}
