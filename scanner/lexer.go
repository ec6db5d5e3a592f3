// Package scanner implements the external lexical scanner for the Puppet
// grammar: the hand-written recognizers that a table-driven parser cannot
// express because they need stateful, context-sensitive decisions — quoted
// strings with embedded interpolation, selector disambiguation, and heredoc
// bodies whose terminator is chosen at runtime.
//
// Scanner is the cursor-driven counterpart to a generated parser, in the
// same spirit as sqlparser.Scanner: it does not produce a token stream on
// its own, but is invoked with a mask of admissible external symbols and
// decides, one call at a time, whether one of them matches at the current
// position.
package scanner

import "unicode/utf8"

// Symbol identifies one of the external tokens this scanner can emit. The
// order and values below must match the grammar's `externals` declaration.
type Symbol int

const (
	QMark Symbol = iota
	SelBrace
	SQString
	DQString
	InterpolationNoBraceVariable
	InterpolationBraceVariable
	InterpolationExpression
	InterpolationNoSigilVariable
	HeredocStart
	HeredocBodyStart
	HeredocContent
	HeredocBodyEnd
	HeredocEscapeSequence
	DQEscapeSequence
	SQEscapeSequence

	symbolCount
)

func (s Symbol) String() string {
	return symbolNames[s]
}

var symbolNames = [symbolCount]string{
	QMark:                        "QMARK",
	SelBrace:                     "SELBRACE",
	SQString:                     "SQ_STRING",
	DQString:                     "DQ_STRING",
	InterpolationNoBraceVariable: "INTERPOLATION_NOBRACE_VARIABLE",
	InterpolationBraceVariable:   "INTERPOLATION_BRACE_VARIABLE",
	InterpolationExpression:      "INTERPOLATION_EXPRESSION",
	InterpolationNoSigilVariable: "INTERPOLATION_NOSIGIL_VARIABLE",
	HeredocStart:                 "HEREDOC_START",
	HeredocBodyStart:             "HEREDOC_BODY_START",
	HeredocContent:               "HEREDOC_CONTENT",
	HeredocBodyEnd:               "HEREDOC_BODY_END",
	HeredocEscapeSequence:        "HEREDOC_ESCAPE_SEQUENCE",
	DQEscapeSequence:             "DQ_ESCAPE_SEQUENCE",
	SQEscapeSequence:             "SQ_ESCAPE_SEQUENCE",
}

var symbolByName map[string]Symbol

func init() {
	symbolByName = make(map[string]Symbol, symbolCount)
	for sym, name := range symbolNames {
		symbolByName[name] = Symbol(sym)
	}
}

// ParseSymbol looks up a Symbol by its external name (e.g. "HEREDOC_START"),
// for tooling — fixture files, CLI flags — that names symbols as strings
// rather than importing the Symbol constants directly.
func ParseSymbol(name string) (Symbol, bool) {
	sym, ok := symbolByName[name]
	return sym, ok
}

// ValidSymbols is the boolean mask over Symbol ids the host parser passes to
// Scan: the set of external tokens it is currently willing to accept.
type ValidSymbols [symbolCount]bool

// Lexer is the pull-I/O handle a host parser grants the scanner: lookahead,
// advance, mark-end and column primitives over an already-buffered input.
// It is the Go-native equivalent of tree-sitter's TSLexer.
//
// Implementations are single-threaded pull cursors; no method blocks,
// suspends, or returns an error — there is nothing to recover from at this
// layer (see spec.md §7).
//
// Commit discipline (spec.md §4.9): the embedder, not this package, is
// responsible for where the cursor ends up once Scan returns. On success,
// the cursor the NEXT call sees must be the position of the last MarkEnd
// call during this one (or the final Advance position if MarkEnd was never
// called) — every Advance issued after the last MarkEnd is pure lookahead
// that gets discarded. On failure, the entire call's advances are
// discarded and the cursor reverts to where it stood when Scan was
// invoked. This lets a recognizer peek arbitrarily far ahead (the heredoc
// start recognizer scans all the way to the terminator line to learn its
// indent) while still emitting a short, exact token.
type Lexer interface {
	// Lookahead returns the code point at the current cursor position, or
	// utf8.RuneError if the cursor is at or past EOF.
	Lookahead() rune

	// EOF reports whether the cursor is at the end of input.
	EOF() bool

	// Advance consumes Lookahead() and moves the cursor to the next code
	// point. skip marks the consumed code point as "extra" (whitespace-like,
	// not part of any token) the way tree-sitter's advance(lexer, true) does.
	Advance(skip bool)

	// MarkEnd commits the current cursor position as the end of the token
	// under construction. Recognizers that may fail after advancing must
	// call MarkEnd before their first Advance and must not call it again
	// until they are certain to succeed (spec.md §4.9).
	MarkEnd()

	// Column returns the 0-based column of Lookahead() on its source line.
	Column() int
}

// runeEOF is what Lookahead returns once the cursor has reached end of
// input, mirroring how a broken/placeholder code point is signalled.
const runeEOF = utf8.RuneError
