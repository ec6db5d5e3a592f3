package scanner

// Scan is the scanner's single entry point for token recognition (spec.md
// §4.1, §6): given the host parser's current valid-symbol mask, it tries
// recognizers in a fixed priority order and returns the first that
// succeeds. The priority order matters: several branches below return
// unconditionally once their admissibility test is met, win or lose,
// deliberately pre-empting every lower-priority recognizer — this mirrors
// the dispatcher in scanner.c exactly, including which branches are
// allowed to fall through on failure and which are not.
func (s *Scanner) Scan(lx Lexer, valid ValidSymbols) (Symbol, bool) {
	if valid[HeredocBodyStart] {
		if h := s.currentHeredoc(); h != nil && !h.Started {
			if sym, ok := s.scanHeredocBodyStart(lx); ok {
				return sym, true
			}
		}
	}

	// Indent stripping is silent and unconditional: it is not itself a
	// token, just a side effect that runs ahead of whichever recognizer
	// ends up firing below.
	if h := s.currentHeredoc(); h != nil && h.Started && h.EndValid && len(h.Indent) > 0 {
		for _, r := range h.Indent {
			if lx.Lookahead() == r {
				lx.Advance(true)
			}
		}
	}

	if valid[QMark] || valid[SelBrace] {
		return s.scanSelBrace(lx)
	}

	// An escape sequence or interpolation start is easier to spot than a
	// plain string body, and only falls through to body/heredoc scanning
	// when it turns out not to apply here.
	if valid[SQEscapeSequence] {
		if sym, ok := scanSQEscapeSequence(lx); ok {
			return sym, true
		}
	}
	if valid[DQEscapeSequence] {
		if sym, ok := scanDQEscapeSequence(lx); ok {
			return sym, true
		}
	}
	if valid[HeredocEscapeSequence] {
		if h := s.currentHeredoc(); h != nil {
			if sym, ok := scanHeredocEscapeSequence(lx, h); ok {
				return sym, true
			}
		}
	}

	if valid[InterpolationNoSigilVariable] && s.insideInterpolationVariable {
		return s.scanInterpolationNoSigilVariable(lx)
	}

	if valid[InterpolationNoBraceVariable] || valid[InterpolationBraceVariable] || valid[InterpolationExpression] {
		h := s.currentHeredoc()
		if h == nil || (h.Started && h.AllowsInterpolation) {
			if sym, ok := s.scanInterpolation(lx); ok {
				return sym, true
			}
		}
	}

	if valid[DQString] {
		return scanDQString(lx)
	}
	if valid[SQString] {
		return scanSQString(lx)
	}
	if valid[HeredocStart] {
		return s.scanHeredocStart(lx)
	}
	if valid[HeredocContent] || valid[HeredocBodyEnd] {
		if s.currentHeredoc() != nil {
			return scanHeredocContent(lx, s)
		}
	}

	return 0, false
}
