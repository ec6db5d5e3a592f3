package scanner

import "encoding/binary"

// Serialize writes the scanner's full state into buf in the byte-exact
// format spec.md §6 mandates: two flag bytes, an open-heredoc count byte,
// then per heredoc three flag bytes followed by three length-prefixed rune
// arrays (word, indent, escapes). It returns the number of bytes written,
// or 0 if the state would not fit in buf — the host's fixed snapshot
// buffer size — in which case buf's contents are unspecified.
//
// Each rune array is capped at 255 elements by its single-byte length
// prefix; a heredoc whose word, indent or escape set has grown past that
// is itself an overflow and also yields 0.
func (s *Scanner) Serialize(buf []byte) int {
	if len(s.openHeredocs) > 255 {
		return 0
	}

	size := 0
	putByte := func(b byte) bool {
		if size >= len(buf) {
			return false
		}
		buf[size] = b
		size++
		return true
	}
	putBool := func(b bool) bool {
		if b {
			return putByte(1)
		}
		return putByte(0)
	}
	putRunes := func(rs []rune) bool {
		if len(rs) > 255 {
			return false
		}
		if !putByte(byte(len(rs))) {
			return false
		}
		if size+len(rs)*4 > len(buf) {
			return false
		}
		for _, r := range rs {
			binary.NativeEndian.PutUint32(buf[size:], uint32(r))
			size += 4
		}
		return true
	}

	if !putBool(s.insideInterpolationVariable) || !putBool(s.checkSelBrace) ||
		!putByte(byte(len(s.openHeredocs))) {
		return 0
	}

	for i := range s.openHeredocs {
		h := &s.openHeredocs[i]
		if !putBool(h.AllowsInterpolation) || !putBool(h.Started) || !putBool(h.EndValid) {
			return 0
		}
		if !putRunes(h.Word) || !putRunes(h.Indent) || !putRunes(h.Escapes) {
			return 0
		}
	}

	return size
}

// Deserialize restores scanner state from buf, which must be either empty
// (the state is simply cleared — the host does this before the first scan
// of a fresh parse) or exactly the output of a prior Serialize call. It
// panics if buf's declared lengths don't account for every byte: that
// means the host handed this scanner bytes it did not produce, a caller
// contract violation rather than anything recoverable mid-parse.
func (s *Scanner) Deserialize(buf []byte) {
	s.insideInterpolationVariable = false
	s.checkSelBrace = false
	s.openHeredocs = nil

	if len(buf) == 0 {
		return
	}

	size := 0
	readBool := func() bool {
		b := buf[size] != 0
		size++
		return b
	}
	readRunes := func() []rune {
		n := int(buf[size])
		size++
		if n == 0 {
			return nil
		}
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = rune(binary.NativeEndian.Uint32(buf[size:]))
			size += 4
		}
		return rs
	}

	s.insideInterpolationVariable = readBool()
	s.checkSelBrace = readBool()
	count := int(buf[size])
	size++

	for i := 0; i < count; i++ {
		var h Heredoc
		h.AllowsInterpolation = readBool()
		h.Started = readBool()
		h.EndValid = readBool()
		h.Word = readRunes()
		h.Indent = readRunes()
		h.Escapes = readRunes()
		s.openHeredocs = append(s.openHeredocs, h)
	}

	if size != len(buf) {
		panic("scanner: deserialize length mismatch")
	}
}
