package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smoeding/tree-sitter-puppet/harness"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the last token of each driver step and pretty-print scanner state after it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		session := harness.NewSession(string(data))
		logrus.WithField("session", session.ID).Debug("starting inspect")

		for i := 0; ; i++ {
			tok, ok := session.Driver.Step()
			if !ok {
				break
			}
			fmt.Printf("%4d  %s\n", i, tok)
			fmt.Println(harness.DumpScanner(session.Driver.Scanner()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
