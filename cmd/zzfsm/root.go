package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Tests build a fresh one each time.
func newRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "zzfsm",
		Short: "Compile patterns into transition tables and match against them",
		Long: `zzfsm compiles patterns made of literal characters, . (any printable
character), $ (end of input) and * (zero or more of the previous atom) into
a table-driven state machine, and matches whole inputs against it.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), verbosity)
			setupColor(cmd.OutOrStdout(), noColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(
		newMatchCmd(),
		newDumpCmd(),
		newDotCmd(),
		newRunCmd(),
		newDemoCmd(),
	)
	return rootCmd
}
