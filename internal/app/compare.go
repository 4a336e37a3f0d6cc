package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/windplan/windfarm-planner/internal/calculation"
	"github.com/windplan/windfarm-planner/internal/config"
	"github.com/windplan/windfarm-planner/internal/output"
)

var (
	flagInput    string
	flagFormat   string
	flagCurrency string
	flagOutDir   string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Evaluate scenarios from a plan file and export a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(flagInput)
		if err != nil {
			return err
		}
		if flagCurrency != "" {
			plan.Currency = flagCurrency
		}

		engine := calculation.NewPlanningEngine()
		if flagVerbose {
			engine.SetLogger(stderrLogger{})
		}

		results, err := engine.RunPlan(plan)
		if err != nil {
			return err
		}

		if !results.Recommendation.HasWinner {
			fmt.Fprintln(os.Stderr, "warning:", results.Recommendation.Justification)
		}

		path, err := output.GenerateReport(results, flagFormat, flagOutDir)
		if err != nil {
			return err
		}
		fmt.Println("report written to", path)
		return nil
	},
}

// stderrLogger routes engine logging to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}
func (stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "info: "+format+"\n", args...)
}
func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warn: "+format+"\n", args...)
}
func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

func init() {
	compareCmd.Flags().StringVarP(&flagInput, "input", "i", "plan.yaml", "Plan definition file (YAML)")
	compareCmd.Flags().StringVarP(&flagFormat, "format", "f", "pdf", "Report format (pdf, text, json)")
	compareCmd.Flags().StringVarP(&flagCurrency, "currency", "c", "", "Currency symbol override for display")
	compareCmd.Flags().StringVarP(&flagOutDir, "out-dir", "o", "", "Directory for the report artifact")
	rootCmd.AddCommand(compareCmd)
}
