package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "pmdmmlc",
		Short:         "Two-pass front end for PMD-style MML source",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			} else {
				logger = logger.Level(zerolog.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newParseCmd(&logger))
	root.AddCommand(newDirectivesCmd(&logger))
	return root
}
