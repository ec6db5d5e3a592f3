package scanner

// scanInterpolation implements the four-mode interpolation recognizer
// (spec.md §4.5). It is only called with lookahead '$'.
func (s *Scanner) scanInterpolation(lx Lexer) (Symbol, bool) {
	if lx.Lookahead() != '$' {
		return 0, false
	}

	lx.MarkEnd()
	lx.Advance(false)

	// Entering any interpolation inside an interpolation-permitting heredoc
	// body invalidates the current line as an end-tag candidate: the line's
	// prefix can no longer be the terminator.
	if h := s.currentHeredoc(); h != nil && h.Started && h.AllowsInterpolation {
		h.EndValid = false
	}

	if lx.EOF() {
		return 0, false
	}

	switch {
	case lx.Lookahead() == '{':
		lx.Advance(false)
		lx.MarkEnd()
		if !isVariableName(lx.Lookahead()) {
			return InterpolationExpression, true
		}
		// Fall through to the shared run-of-variable-name-characters scan
		// below, which decides between brace-variable and expression.

	case isVariableName(lx.Lookahead()):
		s.insideInterpolationVariable = true
		lx.MarkEnd()
		return InterpolationNoBraceVariable, true

	default:
		// The '$' was not followed by anything that looks like a valid
		// interpolation, but it has already been consumed — it might be the
		// last character in the string/heredoc body, so return whichever
		// content symbol currently applies.
		lx.MarkEnd()
		if h := s.currentHeredoc(); h != nil && h.Started {
			return HeredocContent, true
		}
		return DQString, true
	}

	for {
		if lx.EOF() {
			return 0, false
		}
		switch lx.Lookahead() {
		case '}', '[', '.':
			s.insideInterpolationVariable = true
			return InterpolationBraceVariable, true
		default:
			if !isVariableName(lx.Lookahead()) {
				return InterpolationExpression, true
			}
		}
		lx.Advance(false)
	}
}

// scanInterpolationNoSigilVariable emits the zero-width continuation token
// used right after a no-brace variable interpolation, so the grammar can
// reuse its normal variable-name production for the name that follows '$'.
// It clears insideInterpolationVariable on every call, and fails if there
// is no variable-name character ahead at all.
func (s *Scanner) scanInterpolationNoSigilVariable(lx Lexer) (Symbol, bool) {
	lx.MarkEnd()
	s.insideInterpolationVariable = false

	varFound := false
	for {
		if lx.EOF() {
			return 0, false
		}
		if !isVariableName(lx.Lookahead()) {
			if varFound {
				return InterpolationNoSigilVariable, true
			}
			return 0, false
		}
		lx.Advance(false)
		varFound = true
	}
}
