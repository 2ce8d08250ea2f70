package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gabrielPeart/magenta/internal/confirm"
	"github.com/gabrielPeart/magenta/internal/env"
	"github.com/gabrielPeart/magenta/internal/logger"
	"github.com/gabrielPeart/magenta/internal/ops"
)

// DefaultDevice is the block device used when none is given on the
// command line.
const DefaultDevice = "/dev/sda"

func Execute() error {
	rootCmd := &cobra.Command{
		Use:     env.AppName,
		Short:   env.AppName + " - GPT partition table editor",
		Version: env.Version,
	}

	rootCmd.PersistentFlags().BoolP("yes", "y", false, "answer every confirmation prompt with <enter>")
	rootCmd.PersistentFlags().String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(DefineDumpCommand())
	rootCmd.AddCommand(DefineAddCommand())
	rootCmd.AddCommand(DefineRemoveCommand())

	return rootCmd.Execute()
}

func newOps(cmd *cobra.Command) *ops.Ops {
	level, _ := cmd.Flags().GetString("log-level")
	log := logger.New(os.Stderr, logger.ParseLevel(level))

	var gate confirm.Confirmer = confirm.NewKeyConfirmer()
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		gate = confirm.Auto{}
	}
	return ops.New(cmd.OutOrStdout(), log, gate)
}

// deviceArg returns the optional trailing device argument, falling
// back to DefaultDevice.
func deviceArg(args []string, n int) string {
	if len(args) > n {
		return args[n]
	}
	return DefaultDevice
}
