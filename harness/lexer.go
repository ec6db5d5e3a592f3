// Package harness provides a reference embedder for scanner.Scanner: a
// scanner.Lexer implementation over a Go string, a minimal structural
// pre-lexer that decides which external symbols are admissible at each
// position, and fixture-driven replay support. It plays the same role for
// the scanner package that a generated tree-sitter parser would play in
// production — just enough surrounding grammar to drive scan() end to end
// against real input.
package harness

import (
	"unicode/utf8"

	"github.com/smoeding/tree-sitter-puppet/scanner"
)

// StringLexer is a scanner.Lexer over an in-memory rune slice. It is the
// Go-native stand-in for tree-sitter's TSLexer, with the same commit
// discipline: callers must use Commit or Rollback after each Scan call to
// decide, from the outside, where the cursor actually ends up (spec.md
// §4.9) — StringLexer itself never reverts anything on its own.
type StringLexer struct {
	runes       []rune
	pos         int
	lineStart   int
	markedEnd   int // -1 means MarkEnd was not called this call
	tokenStart  int // first code point not part of this call's leading skip run
	startFrozen bool // true once a non-skip Advance or MarkEnd has happened this call
}

// NewStringLexer returns a StringLexer positioned at the start of src.
func NewStringLexer(src string) *StringLexer {
	return &StringLexer{runes: []rune(src), markedEnd: -1}
}

var _ scanner.Lexer = (*StringLexer)(nil)

func (l *StringLexer) Lookahead() rune {
	if l.pos >= len(l.runes) {
		return utf8.RuneError
	}
	return l.runes[l.pos]
}

func (l *StringLexer) EOF() bool {
	return l.pos >= len(l.runes)
}

// Advance consumes Lookahead(). A leading, uninterrupted run of skip=true
// advances at the start of a Scan call is treated the way tree-sitter
// treats advance(lexer, true) before any real token content: those code
// points belong to no token, so they don't count toward the text Commit
// eventually reports for this call.
func (l *StringLexer) Advance(skip bool) {
	if l.pos >= len(l.runes) {
		return
	}
	if skip && !l.startFrozen && l.pos == l.tokenStart {
		l.tokenStart = l.pos + 1
	} else {
		l.startFrozen = true
	}
	if l.runes[l.pos] == '\n' {
		l.lineStart = l.pos + 1
	}
	l.pos++
}

func (l *StringLexer) MarkEnd() {
	l.startFrozen = true
	l.markedEnd = l.pos
}

func (l *StringLexer) Column() int {
	if l.pos <= l.lineStart {
		return 0
	}
	return l.pos - l.lineStart
}

// mark is a restore point captured before a Scan call: physical cursor
// plus enough line-tracking state to undo Advance's side effects exactly.
type mark struct {
	pos       int
	lineStart int
}

// Mark captures the current position, to be passed to Commit or Rollback
// once the driver knows whether this Scan call succeeded.
func (l *StringLexer) Mark() mark {
	l.markedEnd = -1
	l.tokenStart = l.pos
	l.startFrozen = false
	return mark{pos: l.pos, lineStart: l.lineStart}
}

// Commit applies the commit-to-last-MarkEnd rule: on a successful Scan,
// the cursor moves to wherever MarkEnd last left it, or stays where Advance
// left it if the recognizer never called MarkEnd. It returns the token
// text spanning from the end of this call's leading skip run to the
// committed end.
func (l *StringLexer) Commit(start mark) string {
	end := l.pos
	if l.markedEnd >= 0 {
		end = l.markedEnd
	}
	from := l.tokenStart
	if from > end {
		from = end
	}
	text := string(l.runes[from:end])
	l.pos = end
	l.markedEnd = -1
	return text
}

// Rollback undoes every Advance performed since start: a failed Scan call
// must leave the cursor exactly where it found it.
func (l *StringLexer) Rollback(start mark) {
	l.pos = start.pos
	l.lineStart = start.lineStart
	l.markedEnd = -1
}
