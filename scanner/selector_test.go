package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanSelBrace(t *testing.T) {
	test := func(input string, expectedSymbol Symbol, expectedOK bool, expectedText string) func(*testing.T) {
		return func(t *testing.T) {
			s := New()
			lx := newTestLexer(input)
			sym, ok := s.scanSelBrace(lx)
			assert.Equal(t, expectedOK, ok)
			if ok {
				assert.Equal(t, expectedSymbol, sym)
				assert.Equal(t, expectedText, lx.commit(0))
			}
		}
	}

	t.Run("bare question mark", test("?", QMark, true, "?"))
	t.Run("question mark after whitespace", test("  ?", QMark, true, "?"))
	t.Run("selbrace only fires once armed", test("{", 0, false, ""))
	t.Run("other character clears the flag", test("x", 0, false, ""))
	t.Run("eof before any token", test("", 0, false, ""))

	t.Run("armed then brace", func(t *testing.T) {
		s := New()
		lx := newTestLexer("? { 'a' }")

		sym, ok := s.scanSelBrace(lx)
		assert.True(t, ok)
		assert.Equal(t, QMark, sym)
		lx.commit(0)

		sym, ok = s.scanSelBrace(lx)
		assert.True(t, ok)
		assert.Equal(t, SelBrace, sym)
	})
}
