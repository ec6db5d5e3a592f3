package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smoeding/tree-sitter-puppet/harness"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Run the structural driver and scanner over a file and print the resulting external-token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		session := harness.NewSession(string(data))
		logrus.WithFields(logrus.Fields{
			"session": session.ID,
			"file":    args[0],
		}).Debug("starting tokenize")

		tokens := session.Driver.Tokenize()
		fmt.Print(harness.DumpTokens(tokens))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}
