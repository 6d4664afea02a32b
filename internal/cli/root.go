// Package cli implements pulsectl, the offline companion to the dashboard.
// It runs the same calculators and exports as the web app and prints the
// results as terminal panels.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the pulsectl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pulsectl",
		Short: "PropertyPulse AI calculators and exports",
		Long: `pulsectl runs the PropertyPulse AI calculators and sample-data exports
from the command line, without starting the web dashboard.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newEnergyCmd(),
		newImplementationCmd(),
		newROICmd(),
		newMetricsCmd(),
		newExportCmd(),
		newChartCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
