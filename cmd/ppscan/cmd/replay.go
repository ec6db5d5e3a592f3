package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smoeding/tree-sitter-puppet/harness"
)

var replayCmd = &cobra.Command{
	Use:   "replay <fixture.yaml>",
	Short: "Load a YAML fixture, run it through a fresh scanner, and report mismatches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		fixture, err := harness.ParseFixture(data)
		if err != nil {
			return err
		}

		logrus.WithField("fixture", fixture.Name).Debug("starting replay")

		results, err := fixture.Replay()
		if err != nil {
			return err
		}

		failed := false
		matched := 0
		for i, r := range results {
			status := "ok"
			if !r.OK {
				failed = true
				status = "FAIL"
			} else {
				matched++
			}
			fmt.Printf("%4d  %-4s  expect=%-28s got=%s\n", i, status, r.Step.Expect, r.Got)
		}
		if failed || len(results) < len(fixture.Steps) {
			return fmt.Errorf("replay %q: %d/%d steps matched", fixture.Name, matched, len(fixture.Steps))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
