package scanner

// Heredoc holds the per-heredoc state the body recognizer needs across many
// scanner calls: the terminator word, interpolation permission, the
// effective escape-flag set, the learned indent prefix, and the two flags
// that track whether the body has started and whether the end tag is
// eligible at the current position.
//
// A Heredoc is created by the heredoc-start recognizer and destroyed (its
// buffers released) when its end tag is matched, or with the rest of the
// state if the parse session ends first.
type Heredoc struct {
	Word                []rune
	AllowsInterpolation bool
	Escapes             []rune
	Indent              []rune
	Started             bool
	EndValid            bool
}

// hasEscape reports whether r is part of this heredoc's effective
// escape-flag set.
func (h *Heredoc) hasEscape(r rune) bool {
	for _, e := range h.Escapes {
		if e == r {
			return true
		}
	}
	return false
}

// Scanner is the opaque scanner state: one per parse session, mutated only
// inside Scan and Deserialize. It is the Go equivalent of the C scanner's
// ScannerState.
type Scanner struct {
	checkSelBrace               bool
	insideInterpolationVariable bool

	// openHeredocs is a stack ordered by source position of declaration.
	// Index 0 is always the current heredoc: the next one whose body the
	// scanner will consume. Several heredocs may be open at once when
	// several @(...) are declared on the same line.
	openHeredocs []Heredoc
}

// New returns a Scanner with empty open-heredoc stack and all flags false —
// the Go equivalent of tree_sitter_puppet_external_scanner_create.
func New() *Scanner {
	return &Scanner{}
}

// Destroy releases every heredoc's owned buffers. In Go this is a no-op
// beyond dropping references, but it is kept as an explicit operation to
// preserve the five-operation contract (create/destroy/serialize/
// deserialize/scan) an embedder expects, and to give a single place to hook
// cleanup if Scanner ever owns non-GC'd resources.
func (s *Scanner) Destroy() {
	s.openHeredocs = nil
}

// currentHeredoc returns the topmost open heredoc, or nil if none is open.
func (s *Scanner) currentHeredoc() *Heredoc {
	if len(s.openHeredocs) == 0 {
		return nil
	}
	return &s.openHeredocs[0]
}

// popHeredoc removes the topmost open heredoc (its end tag has matched).
func (s *Scanner) popHeredoc() {
	s.openHeredocs = s.openHeredocs[1:]
}

// Snapshot is a read-only, exported view of a Scanner's internal state,
// for debug tooling that wants to print it (e.g. with repr) without a
// byte-level Serialize round trip.
type Snapshot struct {
	InsideInterpolationVariable bool
	CheckSelBrace               bool
	OpenHeredocs                []Heredoc
}

// Inspect returns a Snapshot of the scanner's current state.
func (s *Scanner) Inspect() Snapshot {
	return Snapshot{
		InsideInterpolationVariable: s.insideInterpolationVariable,
		CheckSelBrace:               s.checkSelBrace,
		OpenHeredocs:                append([]Heredoc(nil), s.openHeredocs...),
	}
}

// pushHeredoc appends a newly declared heredoc to the end of openHeredocs.
// Heredocs opened earlier on the same line stay ahead of it and are consumed
// in declaration order, so pushHeredoc must append, not prepend: the most
// recently declared heredoc's body still comes after its predecessors' in
// source order, and index 0 is reassigned only when index 0 pops.
func (s *Scanner) pushHeredoc(h Heredoc) {
	s.openHeredocs = append(s.openHeredocs, h)
}
