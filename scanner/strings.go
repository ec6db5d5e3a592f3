package scanner

// scanSQString implements the single-quoted string body recognizer
// (spec.md §4.3). It consumes code points until an unescaped "'" or "\\" is
// the next lookahead, without consuming that sentinel, and requires at
// least one body code point to have been consumed.
func scanSQString(lx Lexer) (Symbol, bool) {
	hasContent := false
	for {
		if lx.EOF() {
			return 0, false
		}
		if r := lx.Lookahead(); r == '\'' || r == '\\' {
			return SQString, hasContent
		}
		lx.Advance(false)
		hasContent = true
	}
}

// scanSQEscapeSequence recognizes the only two escape sequences a
// single-quoted string supports: "\\\\" and "\\'". Any other "\\X" fails,
// letting the dispatcher fall back to body scanning, which then treats the
// backslash as ordinary content — documented Puppet semantics (spec.md
// §4.3).
func scanSQEscapeSequence(lx Lexer) (Symbol, bool) {
	if lx.EOF() || lx.Lookahead() != '\\' {
		return 0, false
	}
	lx.Advance(false)
	if lx.EOF() {
		return 0, false
	}
	if r := lx.Lookahead(); r != '\\' && r != '\'' {
		return 0, false
	}
	lx.Advance(false)
	return SQEscapeSequence, true
}

// scanDQString implements the double-quoted string body recognizer
// (spec.md §4.4). It consumes until '"', '$' or '\\' is lookahead and
// requires at least one body code point. A '$' only interrupts the body if
// it is followed by '{' or a variable-name starter; otherwise it is
// ordinary content.
func scanDQString(lx Lexer) (Symbol, bool) {
	hasContent := false
	for {
		if lx.EOF() {
			return 0, false
		}
		switch lx.Lookahead() {
		case '"':
			lx.MarkEnd()
			return DQString, hasContent
		case '$':
			if scanInterpolationStart(lx) {
				return DQString, hasContent
			}
			hasContent = true
			continue
		case '\\':
			lx.MarkEnd()
			return DQString, hasContent
		}
		lx.Advance(false)
		hasContent = true
	}
}

// scanDQEscapeSequence recognizes any "\\X" in a double-quoted string body,
// with no semantic validation of X (spec.md §4.4).
func scanDQEscapeSequence(lx Lexer) (Symbol, bool) {
	if lx.EOF() || lx.Lookahead() != '\\' {
		return 0, false
	}
	lx.Advance(false)
	if lx.EOF() {
		return 0, false
	}
	lx.Advance(false)
	return DQEscapeSequence, true
}

// scanInterpolationStart peeks past a '$' to decide whether it begins an
// interpolation ('{' or a variable-name starter follows). It calls MarkEnd
// at the '$' before peeking past it, so a caller that yields ends its token
// just before the '$'. Used by scanDQString to decide whether to yield;
// scanHeredocContent checks for '$' on its own.
func scanInterpolationStart(lx Lexer) bool {
	if lx.Lookahead() != '$' {
		return false
	}
	lx.MarkEnd()
	lx.Advance(false)
	if lx.EOF() {
		return false
	}
	return lx.Lookahead() == '{' || isVariableName(lx.Lookahead())
}
