package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/caiosainvallio/simulations/models"
	"github.com/caiosainvallio/simulations/scenario"
)

// modelsCmd lists the registered model variants
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List model variants",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, m := range models.All() {
			fmt.Fprintf(w, "%s\t%s\n", m.Name(), m.Description())
			if showEdges {
				for _, tr := range m.Transitions() {
					fmt.Fprintf(w, "\t  %s -> %s\t[%s]\n", tr.From, tr.To, tr.Param)
				}
			}
		}
		w.Flush()
	},
}

// scenariosCmd lists the built-in scenario presets
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List built-in scenario presets",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, name := range scenario.Names() {
			sc := scenario.Get(name)
			fmt.Fprintf(w, "%s\t(%s)\t%s\n", name, sc.Model, sc.Description)
		}
		w.Flush()
	},
}

func init() {
	modelsCmd.Flags().BoolVar(&showEdges, "transitions", false, "Show flow topology")

	rootCmd.AddCommand(modelsCmd, scenariosCmd)
}
