package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "ppscan",
		Short:        "ppscan",
		SilenceUsage: true,
		Long:         `Harness CLI for the Puppet external lexical scanner: tokenize files, replay YAML fixtures, and inspect scanner state.`,
	}

	verbose bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace dispatcher decisions at debug level")
	return rootCmd.Execute()
}

func init() {
	logrus.SetLevel(logrus.InfoLevel)
	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
}
