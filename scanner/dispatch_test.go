package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allSymbolsValid() ValidSymbols {
	var v ValidSymbols
	for i := range v {
		v[i] = true
	}
	return v
}

func TestScanPriorityQMarkBeatsStrings(t *testing.T) {
	s := New()
	lx := newTestLexer("?")
	sym, ok := s.Scan(lx, allSymbolsValid())
	assert.True(t, ok)
	assert.Equal(t, QMark, sym)
}

func TestScanFallsThroughFailedSQEscapeToSQString(t *testing.T) {
	// "\n" is not a valid single-quote escape, so the SQ_ESCAPE_SEQUENCE
	// attempt fails and the dispatcher falls through to SQ_STRING, which
	// then happily consumes the backslash as ordinary content. Offering
	// only the symbols a real single-quoted-string context would (no
	// DQ_STRING, which has higher priority and would otherwise intercept).
	s := New()
	lx := newTestLexer(`\nx'`)
	sym, ok := s.Scan(lx, mask(SQEscapeSequence, SQString))
	assert.True(t, ok)
	assert.Equal(t, SQString, sym)
	assert.Equal(t, `\nx`, lx.commit(0))
}

func TestScanRecognizesSQEscapeWhenValid(t *testing.T) {
	s := New()
	lx := newTestLexer(`\'x'`)
	sym, ok := s.Scan(lx, mask(SQEscapeSequence, SQString))
	assert.True(t, ok)
	assert.Equal(t, SQEscapeSequence, sym)
	assert.Equal(t, `\'`, lx.commit(0))
}

func TestScanHeredocContentNotOfferedWithoutOpenHeredoc(t *testing.T) {
	s := New()
	lx := newTestLexer("plain text")
	valid := mask(HeredocContent, HeredocBodyEnd)
	_, ok := s.Scan(lx, valid)
	assert.False(t, ok)
}

func TestScanNoSigilVariableTakesPriorityWhileInsideVariable(t *testing.T) {
	s := New()
	s.insideInterpolationVariable = true
	lx := newTestLexer("world!")
	valid := mask(InterpolationNoSigilVariable, DQString)
	sym, ok := s.Scan(lx, valid)
	assert.True(t, ok)
	assert.Equal(t, InterpolationNoSigilVariable, sym)
}

func TestScanInterpolationSuppressedInNonInterpolatingHeredoc(t *testing.T) {
	s := New()
	s.pushHeredoc(Heredoc{Word: []rune("END"), Started: true, EndValid: true, AllowsInterpolation: false})
	lx := newTestLexer("$x\n")
	valid := mask(InterpolationNoBraceVariable, HeredocContent, HeredocBodyEnd)
	sym, ok := s.Scan(lx, valid)
	assert.True(t, ok)
	assert.Equal(t, HeredocContent, sym)
	assert.Equal(t, "$x\n", lx.commit(0))
}

func TestScanIndentStrippingSkipsLearnedPrefix(t *testing.T) {
	s := New()
	s.pushHeredoc(Heredoc{
		Word:     []rune("END"),
		Started:  true,
		EndValid: true,
		Indent:   []rune("  "),
	})
	lx := newTestLexer("  hello\n")
	valid := mask(HeredocContent, HeredocBodyEnd)
	sym, ok := s.Scan(lx, valid)
	assert.True(t, ok)
	assert.Equal(t, HeredocContent, sym)
	assert.Equal(t, "hello\n", lx.commit(0))
}

func mask(syms ...Symbol) ValidSymbols {
	var v ValidSymbols
	for _, sm := range syms {
		v[sm] = true
	}
	return v
}
