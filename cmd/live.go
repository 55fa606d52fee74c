package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caiosainvallio/simulations/solver"
	"github.com/caiosainvallio/simulations/viz"
)

// liveCmd animates a run frame by frame in the terminal
var liveCmd = &cobra.Command{
	Use:   "live [model]",
	Short: "Watch the epidemic curve advance in the terminal",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		model, params, initial, _, err := resolveRun(args)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		y0, err := solver.OrderInitial(model, initial)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		if err := viz.Run(model, params, y0, liveDt); err != nil {
			logrus.Fatalf("live view failed: %v", err)
		}
	},
}

func init() {
	liveCmd.Flags().Float64Var(&liveDt, "dt", 0.05, "Integration timestep per frame")
	liveCmd.Flags().StringVar(&scenarioName, "scenario", "", "Built-in scenario preset")
	liveCmd.Flags().StringArrayVar(&paramFlags, "set", nil, "Parameter override key=value")

	rootCmd.AddCommand(liveCmd)
}
