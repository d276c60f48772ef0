/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "schemac",
		Short: "Schema declaration compiler",
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logger.SetLogLevel(logger.LogLevelVerbose)
			}
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "detailed logging of the compilation process")

	cmd.AddCommand(newCompileCmd())

	return &cmd
}
