package scanner

// scanNewline consumes a CRLF or LF sequence and reports whether one was
// found. skip controls whether the consumed code points are marked "extra"
// (hidden from the parse tree) the way blank-line scaffolding is, as
// opposed to newlines inside heredoc content, which are ordinary body
// bytes.
func scanNewline(lx Lexer, skip bool) bool {
	switch lx.Lookahead() {
	case '\r':
		lx.Advance(skip)
		if lx.Lookahead() != '\n' {
			return false
		}
		lx.Advance(skip)
	case '\n':
		lx.Advance(skip)
	default:
		return false
	}
	return true
}

// scanHeredocEndTag attempts to match a heredoc terminator line at the
// current position: optional leading whitespace, optional '|' indent
// marker, optional whitespace, optional '-', optional whitespace, the exact
// word code points, optional trailing whitespace, then end-of-input or a
// newline (spec.md §4.7).
//
// When the heredoc has not yet started (h.Started is false), h.Indent is
// reset and this line's leading whitespace is recorded into it as it is
// consumed, and kept only if a '|' marker follows — this is how
// heredoc-start's forward lookahead learns the indent prefix. Once the body
// has started, h.Indent is left unchanged.
//
// mark controls whether MarkEnd is called once the word has fully matched:
// callers doing exploratory indent-learning lookahead (before HeredocStart
// is even emitted) pass false so as not to disturb the token boundary that
// is already frozen at the closing ')'.
func scanHeredocEndTag(lx Lexer, h *Heredoc, mark bool) bool {
	if !h.Started {
		h.Indent = h.Indent[:0]
	}
	for isBlank(lx.Lookahead()) {
		if !h.Started {
			h.Indent = append(h.Indent, lx.Lookahead())
		}
		lx.Advance(false)
	}

	if lx.Lookahead() == '|' {
		lx.Advance(false)
		for isBlank(lx.Lookahead()) {
			lx.Advance(false)
		}
	} else if !h.Started {
		h.Indent = h.Indent[:0]
	}

	if lx.Lookahead() == '-' {
		lx.Advance(false)
	}
	for isBlank(lx.Lookahead()) {
		lx.Advance(false)
	}

	pos := 0
	for ; pos < len(h.Word); pos++ {
		if lx.Lookahead() != h.Word[pos] {
			break
		}
		lx.Advance(false)
	}
	if pos != len(h.Word) {
		return false
	}

	if mark {
		lx.MarkEnd()
	}
	for isBlank(lx.Lookahead()) {
		lx.Advance(false)
	}
	return lx.EOF() || scanNewline(lx, true)
}

// scanHeredocEndTagIndent scans forward from just after a heredoc header's
// closing ')' to the first candidate terminator line, to learn the
// heredoc's indent prefix before HEREDOC_START is emitted. Every Advance it
// performs is pure lookahead relative to the MarkEnd already frozen at ')':
// nothing here is actually committed unless the overall scan succeeds.
func scanHeredocEndTagIndent(lx Lexer, h *Heredoc) bool {
	for {
		if lx.EOF() {
			return false
		}
		if scanNewline(lx, true) {
			if scanHeredocEndTag(lx, h, false) {
				return true
			}
			continue
		}
		lx.Advance(false)
	}
}

// scanHeredocStart implements the heredoc-start recognizer (spec.md §4.6).
// The surrounding "@(" and ")" are parser-level tokens; this only parses
// the interior and, for validation, looks past the still-unconsumed ')' to
// confirm a matching terminator line exists and to learn the indent.
func (s *Scanner) scanHeredocStart(lx Lexer) (Symbol, bool) {
	if lx.EOF() {
		return 0, false
	}

	for isBlank(lx.Lookahead()) {
		lx.Advance(true)
	}

	var word []rune
	for !lx.EOF() && isHeredocWord(lx.Lookahead()) {
		word = append(word, lx.Lookahead())
		lx.Advance(false)
	}
	for len(word) > 0 && isBlank(word[len(word)-1]) {
		word = word[:len(word)-1]
	}

	allowsInterpolation := false
	if len(word) > 1 && word[0] == '"' && word[len(word)-1] == '"' {
		allowsInterpolation = true
		word = word[1 : len(word)-1]
	}
	if len(word) == 0 {
		return 0, false
	}

	for isBlank(lx.Lookahead()) {
		lx.Advance(true)
	}
	if lx.Lookahead() == ':' {
		lx.Advance(false)
		for isSyntaxNameChar(lx.Lookahead()) {
			lx.Advance(false)
		}
	}

	for isBlank(lx.Lookahead()) {
		lx.Advance(true)
	}
	var escapes []rune
	if lx.Lookahead() == '/' {
		lx.Advance(false)
		for isHeredocEscapeFlag(lx.Lookahead()) {
			escapes = append(escapes, lx.Lookahead())
			lx.Advance(false)
		}
		if len(escapes) == 0 {
			escapes = append(escapes, heredocEscapes...)
		}
		escapes = append(escapes, '\\')
	}

	for isBlank(lx.Lookahead()) {
		lx.Advance(true)
	}
	if lx.Lookahead() != ')' {
		return 0, false
	}

	lx.MarkEnd()
	h := Heredoc{
		Word:                word,
		AllowsInterpolation: allowsInterpolation,
		Escapes:             escapes,
	}
	if !scanHeredocEndTagIndent(lx, &h) {
		return 0, false
	}
	s.pushHeredoc(h)
	return HeredocStart, true
}

// scanHeredocBodyStart consumes the whitespace-then-newline that must
// follow a heredoc's opening line before its body begins (spec.md §4.7).
func (s *Scanner) scanHeredocBodyStart(lx Lexer) (Symbol, bool) {
	for isBlank(lx.Lookahead()) {
		lx.Advance(true)
	}
	if !scanNewline(lx, true) {
		return 0, false
	}
	h := s.currentHeredoc()
	h.Started = true
	h.EndValid = true
	return HeredocBodyStart, true
}

// scanHeredocContent implements the heredoc body recognizer's content/
// end-tag half (spec.md §4.7): it emits HeredocContent chunks up to, but
// not across, an interpolation start, an escape-eligible backslash, or a
// newline, and emits HeredocBodyEnd once a terminator line matches.
func scanHeredocContent(lx Lexer, s *Scanner) (Symbol, bool) {
	h := s.currentHeredoc()
	hasContent := false

	lx.MarkEnd()
	for {
		if lx.EOF() {
			return 0, false
		}

		if h.EndValid {
			if scanHeredocEndTag(lx, h, true) {
				s.popHeredoc()
				return HeredocBodyEnd, true
			}
			if lx.Column() > 0 {
				hasContent = true
			}
			h.EndValid = false
		}

		if lx.Lookahead() == '\\' && len(h.Escapes) > 0 {
			lx.MarkEnd()
			if hasContent {
				return HeredocContent, true
			}
			return 0, false
		}
		if lx.Lookahead() == '$' && h.AllowsInterpolation {
			lx.MarkEnd()
			if hasContent {
				return HeredocContent, true
			}
			return 0, false
		}
		if scanNewline(lx, false) {
			h.EndValid = true
			lx.MarkEnd()
			return HeredocContent, true
		}

		lx.Advance(false)
		lx.MarkEnd()
		hasContent = true
	}
}

// scanHeredocEscapeSequence recognizes a heredoc body escape sequence
// (spec.md §4.7). An immediate newline after '\\' is always a line
// continuation; otherwise the following code point is checked against the
// heredoc's effective escape set. A backslash followed by a code point
// outside that set still consumes both as one token, but degrades its
// result to an ordinary HeredocContent rather than HeredocEscapeSequence —
// the Ambiguity resolution in spec.md §9.
func scanHeredocEscapeSequence(lx Lexer, h *Heredoc) (Symbol, bool) {
	if lx.EOF() || lx.Lookahead() != '\\' {
		return 0, false
	}
	lx.MarkEnd()
	lx.Advance(false)
	if lx.EOF() {
		return 0, false
	}

	if scanNewline(lx, false) {
		h.EndValid = true
		lx.MarkEnd()
		if h.hasEscape('L') {
			return HeredocEscapeSequence, true
		}
		return HeredocContent, true
	}

	var sym Symbol
	if h.hasEscape(lx.Lookahead()) {
		if lx.Lookahead() == 'u' {
			lx.Advance(false)
			if isHexDigit(lx.Lookahead()) {
				for i := 0; i < 4 && isHexDigit(lx.Lookahead()); i++ {
					lx.Advance(false)
				}
			} else if lx.Lookahead() == '{' {
				lx.Advance(false)
				for i := 0; i < 6 && isHexDigit(lx.Lookahead()); i++ {
					lx.Advance(false)
				}
				if lx.Lookahead() == '}' {
					lx.Advance(false)
				}
			}
		} else {
			lx.Advance(false)
		}
		sym = HeredocEscapeSequence
	} else {
		lx.Advance(false)
		sym = HeredocContent
	}

	lx.MarkEnd()
	h.EndValid = false
	return sym, true
}
