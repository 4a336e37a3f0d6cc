// Package app contains the Cobra command tree for windplan.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "windplan",
	Short: "Compare wind-farm investment scenarios",
	Long: `windplan evaluates candidate wind-farm investment plans, computes
comparable financial metrics for each (installation cost, income,
maintenance, net annual savings, payback period), recommends the plan with
the shortest payback, and exports a printable report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("windplan", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  compare   Evaluate scenarios from a plan file and export a report")
		fmt.Println("  example   Print a starter plan definition in YAML")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
