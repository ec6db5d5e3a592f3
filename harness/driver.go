package harness

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/smoeding/tree-sitter-puppet/scanner"
)

// Token is one step of Driver.Tokenize's output: either an external symbol
// the scanner recognized, or "other" text the structural pre-lexer
// consumed itself because no external symbol applied at that position.
type Token struct {
	Symbol scanner.Symbol
	Other  bool
	Text   string
}

func (t Token) String() string {
	if t.Other {
		return fmt.Sprintf("OTHER %q", t.Text)
	}
	return fmt.Sprintf("%s %q", t.Symbol, t.Text)
}

type context int

const (
	topLevel context = iota
	sqString
	dqString
	heredocBody
	bracedExpression
)

// frame is one entry of the driver's context stack. depth is only
// meaningful for bracedExpression: the number of '{' seen (counting the
// one implied by the "${" an INTERPOLATION_EXPRESSION token already
// consumed) still waiting for a matching '}'.
type frame struct {
	kind  context
	depth int
}

// Driver is a minimal structural pre-lexer over Puppet-like source: just
// enough of the surrounding grammar — quote characters, '?'/'{',  the
// "@(" heredoc marker, body/end-tag boundaries — to know which external
// symbols are admissible at each position, so scanner.Scanner.Scan can be
// driven end to end against real text the way a generated tree-sitter
// parser would. It is intentionally not a Puppet grammar (spec.md's
// Non-goals apply here too): anything it doesn't specifically recognize
// becomes an opaque "other" token.
//
// Two bits of extra bookkeeping exist only because the scanner's content
// recognizers (DQ_STRING, HEREDOC_CONTENT) don't stop at the boundary a
// real grammar's own token rules would: after a zero-width
// INTERPOLATION_NOSIGIL_VARIABLE, the variable name itself has to be
// consumed explicitly before content-scanning resumes, and after
// INTERPOLATION_EXPRESSION the embedded expression (out of scope per
// spec.md's Non-goals) has to be skipped up to its matching '}' the same
// way.
type Driver struct {
	sc                  *scanner.Scanner
	lx                  *StringLexer
	stack               []frame
	tokens              []Token
	pendingVariableName bool
}

// NewDriver returns a Driver ready to tokenize src with a fresh scanner.
func NewDriver(src string) *Driver {
	return &Driver{
		sc:    scanner.New(),
		lx:    NewStringLexer(src),
		stack: []frame{{kind: topLevel}},
	}
}

// Scanner exposes the underlying scanner.Scanner, e.g. for serialization
// round-trip tests or repr-based inspection mid-stream.
func (d *Driver) Scanner() *scanner.Scanner { return d.sc }

func (d *Driver) top() context      { return d.stack[len(d.stack)-1].kind }
func (d *Driver) push(c context)    { d.stack = append(d.stack, frame{kind: c}) }
func (d *Driver) pop()              { d.stack = d.stack[:len(d.stack)-1] }
func (d *Driver) topFrame() *frame { return &d.stack[len(d.stack)-1] }

func (d *Driver) emit(tok Token) { d.tokens = append(d.tokens, tok) }

// Tokenize runs the driver to completion and returns every token it
// produced. It never errors: a position it cannot make sense of is simply
// emitted as an "other" token, the same tolerance a real incremental
// parser has for text outside of what it specifically recognizes.
func (d *Driver) Tokenize() []Token {
	for !d.lx.EOF() {
		d.step()
	}
	return d.tokens
}

// Step runs a single driver step and returns the last token it produced,
// or ok=false if the input was already exhausted. Most steps produce one
// token; a step over a heredoc header produces up to three ("@(",
// HEREDOC_START, ")") and only the last of them is returned. Useful for
// tooling that wants to inspect scanner state between steps (cmd/ppscan
// inspect).
func (d *Driver) Step() (Token, bool) {
	if d.lx.EOF() {
		return Token{}, false
	}
	d.step()
	return d.tokens[len(d.tokens)-1], true
}

func mask(syms ...scanner.Symbol) scanner.ValidSymbols {
	var v scanner.ValidSymbols
	for _, s := range syms {
		v[s] = true
	}
	return v
}

var interpolationSymbols = []scanner.Symbol{
	scanner.InterpolationNoBraceVariable,
	scanner.InterpolationBraceVariable,
	scanner.InterpolationExpression,
	scanner.InterpolationNoSigilVariable,
}

func withInterpolation(v scanner.ValidSymbols) scanner.ValidSymbols {
	for _, s := range interpolationSymbols {
		v[s] = true
	}
	return v
}

// scan tries one Scan call with valid, committing or rolling back the
// lexer's cursor as appropriate, and emits the resulting token on success.
// Every call that reaches the dispatcher is traced at debug level with the
// symbol it picked, so --verbose shows which recognizer fired at each
// position without having to instrument scanner.Scan itself (which carries
// no logging of its own, per spec.md §7).
func (d *Driver) scan(valid scanner.ValidSymbols) bool {
	m := d.lx.Mark()
	sym, ok := d.sc.Scan(d.lx, valid)
	if !ok {
		logrus.WithField("pos", m.pos).Debug("dispatcher: no recognizer matched")
		d.lx.Rollback(m)
		return false
	}
	text := d.lx.Commit(m)
	logrus.WithFields(logrus.Fields{
		"pos":    m.pos,
		"symbol": sym,
		"text":   text,
	}).Debug("dispatcher: recognizer matched")
	d.emit(Token{Symbol: sym, Text: text})
	return true
}

// other consumes exactly n code points as one opaque token.
func (d *Driver) other(n int) {
	m := d.lx.Mark()
	for i := 0; i < n && !d.lx.EOF(); i++ {
		d.lx.Advance(false)
	}
	d.emit(Token{Other: true, Text: d.lx.Commit(m)})
}

// isWord reports whether r may appear in the driver's own coarse
// identifier-like fallback run — this is the grammar-level production that
// would, in a real parser, consume a Puppet variable name or bareword
// after a zero-width interpolation token; it is deliberately a superset of
// scanner.isVariableName since unrecognized text is not semantically
// validated here (spec.md Non-goals).
func isWord(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '_' || r == ':'
}

// otherRun consumes either a run of isWord code points, or exactly one
// code point if the lookahead isn't a word character, as one opaque token.
func (d *Driver) otherRun() {
	if !isWord(d.lx.Lookahead()) {
		d.other(1)
		return
	}
	m := d.lx.Mark()
	for isWord(d.lx.Lookahead()) {
		d.lx.Advance(false)
	}
	d.emit(Token{Other: true, Text: d.lx.Commit(m)})
}

func (d *Driver) step() {
	switch d.top() {
	case sqString:
		d.stepSQString()
	case dqString:
		d.stepDQString()
	case heredocBody:
		d.stepHeredocBody()
	case bracedExpression:
		d.stepBracedExpression()
	default:
		d.stepTopLevel()
	}
}

// consumePendingVariableName, called at the top of any context that
// offers interpolation symbols, eats the variable name a preceding
// zero-width INTERPOLATION_NOSIGIL_VARIABLE left sitting at the cursor,
// before a content recognizer gets a chance to swallow it as ordinary
// string or heredoc body text. Returns true if it consumed anything.
func (d *Driver) consumePendingVariableName() bool {
	if !d.pendingVariableName {
		return false
	}
	d.pendingVariableName = false
	d.otherRun()
	return true
}

// afterInterpolation records driver-level follow-up work implied by the
// external symbol a successful scan() just emitted.
func (d *Driver) afterInterpolation(sym scanner.Symbol) {
	switch sym {
	case scanner.InterpolationNoSigilVariable:
		d.pendingVariableName = true
	case scanner.InterpolationExpression:
		d.stack = append(d.stack, frame{kind: bracedExpression, depth: 1})
	}
}

// stepBracedExpression skips the body of a "${ ... }" interpolation up to
// its matching close brace — out of scope per spec.md's Non-goals beyond
// locating that boundary — emitting everything as opaque "other" tokens.
func (d *Driver) stepBracedExpression() {
	switch d.lx.Lookahead() {
	case '{':
		d.topFrame().depth++
		d.other(1)
	case '}':
		d.topFrame().depth--
		if d.topFrame().depth == 0 {
			d.other(1)
			d.pop()
			return
		}
		d.other(1)
	default:
		d.otherRun()
	}
}

func (d *Driver) stepTopLevel() {
	if d.scan(mask(scanner.QMark, scanner.SelBrace)) {
		return
	}

	switch d.lx.Lookahead() {
	case '\'':
		d.other(1)
		d.push(sqString)
		return
	case '"':
		d.other(1)
		d.push(dqString)
		return
	case '@':
		if d.tryHeredocStart() {
			return
		}
	}

	d.otherRun()
}

// tryHeredocStart recognizes a literal "@(" and, if the interior parses as
// a valid heredoc header, consumes the trailing ")" (a parser-level token
// per spec.md §4.6) and enters heredoc-body context.
func (d *Driver) tryHeredocStart() bool {
	m := d.lx.Mark()
	d.lx.Advance(false) // '@'
	if d.lx.Lookahead() != '(' {
		d.lx.Rollback(m)
		return false
	}
	d.lx.Advance(false) // '('
	d.emit(Token{Other: true, Text: d.lx.Commit(m)})

	if !d.scan(mask(scanner.HeredocStart)) {
		return true
	}
	d.other(1) // ')'
	d.push(heredocBody)
	return true
}

func (d *Driver) stepSQString() {
	if d.lx.Lookahead() == '\'' {
		d.other(1)
		d.pop()
		return
	}
	if d.scan(mask(scanner.SQString, scanner.SQEscapeSequence)) {
		return
	}
	d.otherRun()
}

func (d *Driver) stepDQString() {
	if d.consumePendingVariableName() {
		return
	}
	if d.lx.Lookahead() == '"' {
		d.other(1)
		d.pop()
		return
	}
	valid := withInterpolation(mask(scanner.DQString, scanner.DQEscapeSequence))
	if d.scan(valid) {
		d.afterInterpolation(d.tokens[len(d.tokens)-1].Symbol)
		return
	}
	d.otherRun()
}

func (d *Driver) stepHeredocBody() {
	if d.consumePendingVariableName() {
		return
	}
	valid := withInterpolation(mask(
		scanner.HeredocBodyStart,
		scanner.HeredocContent,
		scanner.HeredocBodyEnd,
		scanner.HeredocEscapeSequence,
	))
	if d.scan(valid) {
		sym := d.tokens[len(d.tokens)-1].Symbol
		if sym == scanner.HeredocBodyEnd {
			d.pop()
			return
		}
		d.afterInterpolation(sym)
		return
	}
	d.otherRun()
}
