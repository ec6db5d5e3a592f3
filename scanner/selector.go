package scanner

// scanSelBrace implements the selector recognizer (spec.md §4.2). It skips
// whitespace (including newlines), emits QMark on '?' and arms
// checkSelBrace, then emits SelBrace on the following '{' if checkSelBrace
// is still set. Any other non-whitespace character clears the flag and
// fails: the parser calls this recognizer with both QMark and SelBrace
// admissible and relies on the pending flag to pick the right one.
func (s *Scanner) scanSelBrace(lx Lexer) (Symbol, bool) {
	for {
		if lx.EOF() {
			return 0, false
		}

		switch {
		case isSpaceOrNewline(lx.Lookahead()):
			lx.Advance(true)
		case lx.Lookahead() == '?':
			s.checkSelBrace = true
			lx.Advance(false)
			return QMark, true
		case lx.Lookahead() == '{':
			if s.checkSelBrace {
				s.checkSelBrace = false
				lx.Advance(false)
				return SelBrace, true
			}
			return 0, false
		default:
			s.checkSelBrace = false
			return 0, false
		}
	}
}

func isSpaceOrNewline(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
