package cmd

import (
	"os"

	"figurine-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "figurine-manager",
	Short: "Figurine Manager Service",
	Long: `Figurine Manager matches a miniature collection against army rosters.
It reports which required models are covered by owned miniatures, which are
missing and which owned miniatures are left over.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. A failing command is logged and exits 1.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		l := logger.Console()
		l.Error("Command failed", zap.String("command", commandPath(os.Args)), zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}

func commandPath(args []string) string {
	cmd, _, err := RootCmd.Find(args[1:])
	if err != nil || cmd == nil {
		return RootCmd.Name()
	}
	return cmd.CommandPath()
}
