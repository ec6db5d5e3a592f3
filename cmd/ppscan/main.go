package main

import (
	"os"

	"github.com/smoeding/tree-sitter-puppet/cmd/ppscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
