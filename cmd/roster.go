package cmd

import (
	"fmt"

	"figurine-manager/core/reconcile"

	"github.com/spf13/cobra"
)

var stackedFlag bool

// rosterCmd is the parent command for roster operations.
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Inspect rosters stored in the bucket",
}

// rosterListCmd prints a summary of every stored roster.
var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored rosters",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		client, err := e.storage()
		if err != nil {
			return err
		}

		summaries, err := e.rosterProvider(client, 0).Summaries(cmd.Context())
		if err != nil {
			return err
		}
		if jsonFlag {
			return printJSON(summaries)
		}
		for _, s := range summaries {
			fmt.Printf("%s: %s (%d forces, %d units, %d models)\n", s.Key, s.Name, s.Forces, s.Units, s.Models)
		}
		return nil
	},
}

// rosterModelsCmd prints the required models of a roster.
var rosterModelsCmd = &cobra.Command{
	Use:   "models <key>",
	Short: "List the physical models a roster requires",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		client, err := e.storage()
		if err != nil {
			return err
		}

		required, err := e.rosterProvider(client, 0).RequiredModels(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if stackedFlag {
			required = reconcile.StackRequired(required)
		}
		if jsonFlag {
			return printJSON(required)
		}
		for _, r := range required {
			fmt.Printf("%3d x %s\n", r.Amount, describeRequired(r))
		}
		return nil
	},
}

func init() {
	rosterModelsCmd.Flags().BoolVar(&stackedFlag, "stacked", true, "Group identical models")
	rosterModelsCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print models as JSON")
	rosterListCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print summaries as JSON")

	rosterCmd.AddCommand(rosterListCmd, rosterModelsCmd)
	RootCmd.AddCommand(rosterCmd)
}
