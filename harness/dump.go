package harness

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/smoeding/tree-sitter-puppet/scanner"
)

// DumpScanner pretty-prints a scanner's internal state with repr, the same
// role repr plays for ad hoc struct inspection in the teacher's query dump
// helpers — here used on scanner.Scanner.Inspect()'s exported snapshot
// rather than a database row.
func DumpScanner(sc *scanner.Scanner) string {
	return repr.String(sc.Inspect(), repr.Indent("  "))
}

// DumpTokens pretty-prints a token stream, one entry per line, prefixed
// with its index for cross-referencing against fixture step numbers.
func DumpTokens(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		fmt.Fprintf(&b, "%4d  %s\n", i, t)
	}
	return b.String()
}
