package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	pick := newPickCmd(flags)

	cmd := &cobra.Command{
		Use:           "tablepick",
		Short:         "Pick a table size (rows × columns) from an interactive grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          pick.RunE,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML picker configuration")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of discarding them")

	// The root command runs the picker, so it accepts the same flags.
	cmd.Flags().AddFlagSet(pick.Flags())

	cmd.AddCommand(pick)
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newBreakpointsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
