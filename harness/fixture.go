package harness

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/smoeding/tree-sitter-puppet/scanner"
)

// Step is one replay instruction against a fixture's Input: the set of
// external symbols to offer the scanner, and what that Scan call is
// expected to produce.
type Step struct {
	Valid   []string `yaml:"valid"`
	Expect  string   `yaml:"expect,omitempty"`
	Text    string   `yaml:"text,omitempty"`
	NoMatch bool     `yaml:"no_match,omitempty"`
}

// Fixture is a YAML-described end-to-end scanner replay scenario: an input
// string plus the sequence of Scan calls that should be run over it and
// what each is expected to produce. It plays the role for scanner traces
// that sqlparser/create.go's YAML-tagged structs play for parsed
// declarations — a fixed, reviewable format for test data.
type Fixture struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Steps []Step `yaml:"steps"`
}

// ParseFixture decodes a single YAML fixture document.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("harness: parsing fixture: %w", err)
	}
	return &f, nil
}

// Result records one Step's outcome during Replay.
type Result struct {
	Step Step
	Got  Token
	OK   bool
}

// Replay runs every step of f, in order, against a fresh scanner.Scanner
// and StringLexer, stopping at the first mismatch. It returns one Result
// per step attempted.
func (f *Fixture) Replay() ([]Result, error) {
	sc := scanner.New()
	lx := NewStringLexer(f.Input)

	var results []Result
	for i, step := range f.Steps {
		valid, err := parseValidSymbols(step.Valid)
		if err != nil {
			return results, fmt.Errorf("harness: step %d: %w", i, err)
		}

		m := lx.Mark()
		sym, ok := sc.Scan(lx, valid)

		res := Result{Step: step}
		if ok {
			text := lx.Commit(m)
			res.Got = Token{Symbol: sym, Text: text}
			res.OK = !step.NoMatch && sym.String() == step.Expect && text == step.Text
		} else {
			lx.Rollback(m)
			res.OK = step.NoMatch
		}

		results = append(results, res)
		if !res.OK {
			break
		}
	}
	return results, nil
}

func parseValidSymbols(names []string) (scanner.ValidSymbols, error) {
	var v scanner.ValidSymbols
	for _, n := range names {
		sym, ok := scanner.ParseSymbol(n)
		if !ok {
			return v, fmt.Errorf("unknown external symbol %q", n)
		}
		v[sym] = true
	}
	return v, nil
}
