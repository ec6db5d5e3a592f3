package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanHeredocStart(t *testing.T) {
	test := func(input string, expectedOK bool, expectedWord, expectedEscapes string, expectedAllowsInterpolation bool) func(*testing.T) {
		return func(t *testing.T) {
			s := New()
			lx := newTestLexer(input)
			sym, ok := s.scanHeredocStart(lx)
			assert.Equal(t, expectedOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, HeredocStart, sym)
			h := s.currentHeredoc()
			assert.NotNil(t, h)
			assert.Equal(t, expectedWord, string(h.Word))
			assert.Equal(t, expectedEscapes, string(h.Escapes))
			assert.Equal(t, expectedAllowsInterpolation, h.AllowsInterpolation)
		}
	}

	t.Run("bare word", test("END)\nbody\nEND\n", true, "END", "", false))
	t.Run("quoted word allows interpolation", test(`"END")`+"\nbody\nEND\n", true, "END", "", true))
	t.Run("word with syntax tag", test("END:json)\nbody\nEND\n", true, "END", "", false))
	t.Run("word with default escapes", test("END/)\nbody\nEND\n", true, "END", "nrts$uL\\", false))
	t.Run("word with selected escapes", test("END/$n)\nbody\nEND\n", true, "END", "$n\\", false))
	t.Run("missing close paren fails", test("END", false, "", "", false))
	t.Run("empty word fails", test(")", false, "", "", false))
	t.Run("eof fails", test("", false, "", "", false))
	t.Run("no terminator line anywhere fails", test("END)\nbody without a closing tag\n", false, "", "", false))
}

func TestScanHeredocBodyStart(t *testing.T) {
	s := New()
	s.pushHeredoc(Heredoc{Word: []rune("END")})
	lx := newTestLexer("  \nbody")

	sym, ok := s.scanHeredocBodyStart(lx)
	assert.True(t, ok)
	assert.Equal(t, HeredocBodyStart, sym)
	h := s.currentHeredoc()
	assert.True(t, h.Started)
	assert.True(t, h.EndValid)
	// Every advance here is skip=true with no MarkEnd call, so the whole
	// leading-whitespace-then-newline run is trivia: the committed text is
	// empty, matching how tree-sitter treats a purely-skip token.
	assert.Equal(t, "", lx.commit(0))
}

func TestScanHeredocBodyStartRequiresNewline(t *testing.T) {
	s := New()
	s.pushHeredoc(Heredoc{Word: []rune("END")})
	lx := newTestLexer("  not a newline")

	_, ok := s.scanHeredocBodyStart(lx)
	assert.False(t, ok)
}

func TestScanHeredocContent(t *testing.T) {
	s := New()
	s.pushHeredoc(Heredoc{Word: []rune("END"), Started: true, EndValid: true})
	lx := newTestLexer("  hello\nEND")

	sym, ok := scanHeredocContent(lx, s)
	assert.True(t, ok)
	assert.Equal(t, HeredocContent, sym)
	assert.Equal(t, "  hello\n", lx.commit(0))
	assert.NotNil(t, s.currentHeredoc())

	sym, ok = scanHeredocContent(lx, s)
	assert.True(t, ok)
	assert.Equal(t, HeredocBodyEnd, sym)
	assert.Equal(t, "END", lx.commit(8))
	assert.Nil(t, s.currentHeredoc())
}

func TestScanHeredocContentStopsBeforeEscape(t *testing.T) {
	s := New()
	s.pushHeredoc(Heredoc{Word: []rune("END"), Started: true, EndValid: true, Escapes: []rune{'n', '\\'}})
	lx := newTestLexer(`line\nmore`)

	sym, ok := scanHeredocContent(lx, s)
	assert.True(t, ok)
	assert.Equal(t, HeredocContent, sym)
	assert.Equal(t, "line", lx.commit(0))
}

func TestScanHeredocContentStopsBeforeInterpolation(t *testing.T) {
	s := New()
	s.pushHeredoc(Heredoc{Word: []rune("END"), Started: true, EndValid: true, AllowsInterpolation: true})
	lx := newTestLexer("value=$x\n")

	sym, ok := scanHeredocContent(lx, s)
	assert.True(t, ok)
	assert.Equal(t, HeredocContent, sym)
	assert.Equal(t, "value=", lx.commit(0))
}

func TestScanHeredocEscapeSequence(t *testing.T) {
	test := func(h Heredoc, input string, expectedOK bool, expectedSymbol Symbol, expectedText string) func(*testing.T) {
		return func(t *testing.T) {
			lx := newTestLexer(input)
			sym, ok := scanHeredocEscapeSequence(lx, &h)
			assert.Equal(t, expectedOK, ok)
			if ok {
				assert.Equal(t, expectedSymbol, sym)
				assert.Equal(t, expectedText, lx.commit(0))
			}
		}
	}

	nEscapes := Heredoc{Escapes: []rune{'n', '\\'}}

	t.Run("in-set escape", test(nEscapes, `\nrest`, true, HeredocEscapeSequence, `\n`))
	t.Run("line continuation with L escape enabled", test(Heredoc{Escapes: []rune{'L'}}, "\\\nrest", true, HeredocEscapeSequence, "\\\n"))
	t.Run("line continuation without L escape is content", test(Heredoc{}, "\\\nrest", true, HeredocContent, "\\\n"))
	t.Run("out-of-set escape degrades to content", test(nEscapes, `\qrest`, true, HeredocContent, `\q`))
	t.Run("no backslash", test(nEscapes, "x", false, 0, ""))
	t.Run("trailing backslash at eof", test(nEscapes, `\`, false, 0, ""))

	hexEscape := `\` + "u0041rest"
	wantHex := `\` + "u0041"
	t.Run("unicode escape four hex digits", test(Heredoc{Escapes: []rune{'u', '\\'}}, hexEscape, true, HeredocEscapeSequence, wantHex))
	t.Run("unicode escape braced", test(Heredoc{Escapes: []rune{'u', '\\'}}, `\u{1F600}rest`, true, HeredocEscapeSequence, `\u{1F600}`))
	t.Run("unicode escape with no hex digits still matches literal u", test(Heredoc{Escapes: []rune{'u', '\\'}}, `\urest`, true, HeredocEscapeSequence, `\u`))
}

func TestHeredocHasEscape(t *testing.T) {
	h := Heredoc{Escapes: []rune{'n', 'r', '\\'}}
	assert.True(t, h.hasEscape('n'))
	assert.True(t, h.hasEscape('\\'))
	assert.False(t, h.hasEscape('q'))
}
