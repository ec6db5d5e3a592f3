package scanner

import "github.com/smasher164/xid"

// heredocEscapes is the fixed, ordered set of escape-flag characters a
// heredoc header may select from. Declaration order matters: it is the
// order newly-built escape sets are populated in, and therefore the byte
// order Serialize writes them in.
var heredocEscapes = []rune{'n', 'r', 't', 's', '$', 'u', 'L'}

// isVariableName reports whether r may appear in a Puppet variable name:
// lowercase ASCII letter, digit, underscore, or colon (colon participates
// only in qualified names; the grammar decides where that is admissible).
func isVariableName(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == ':'
}

// isHeredocWord reports whether r may appear in a heredoc terminator word:
// anything except the characters that delimit the `@( ... )` header.
func isHeredocWord(r rune) bool {
	switch r {
	case ':', '/', '\r', '\n', ')':
		return false
	default:
		return true
	}
}

// isHeredocEscapeFlag reports whether r is one of the fixed heredoc
// escape-flag characters (the letters after '/' in a heredoc header, before
// they are resolved against a particular heredoc's effective set).
func isHeredocEscapeFlag(r rune) bool {
	for _, e := range heredocEscapes {
		if e == r {
			return true
		}
	}
	return false
}

// isHexDigit reports whether r is an ASCII hexadecimal digit, used for the
// \uXXXX / \u{XXXXXX} heredoc escape payload.
func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isSyntaxNameChar reports whether r may appear in the optional `:syntax`
// tag of a heredoc header (@(word:syntax)). The original C scanner used
// isalnum here; this Go rendition generalizes to full Unicode identifier
// continuation characters via xid, since a syntax tag (e.g. "json", "yaml")
// is a generic identifier-like token with no ASCII-only mandate in spec.md.
func isSyntaxNameChar(r rune) bool {
	return xid.Continue(r)
}

// isBlank reports whether r is an ASCII space or tab — the only whitespace
// the heredoc header and end-tag grammar skip; newlines are significant
// there and handled separately.
func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}
