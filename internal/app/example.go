package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/windplan/windfarm-planner/internal/config"
	"gopkg.in/yaml.v3"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a starter plan definition in YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan := config.NewInputParser().CreateExamplePlan()
		data, err := yaml.Marshal(plan)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
