package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	s := New()
	s.checkSelBrace = true
	s.insideInterpolationVariable = true
	s.pushHeredoc(Heredoc{
		Word:                []rune("END"),
		AllowsInterpolation: true,
		Escapes:             []rune{'n', '$', '\\'},
		Indent:              []rune("  "),
		Started:             true,
		EndValid:            true,
	})
	s.pushHeredoc(Heredoc{Word: []rune("OTHER")})

	buf := make([]byte, 256)
	n := s.Serialize(buf)
	assert.Greater(t, n, 0)

	restored := New()
	restored.Deserialize(buf[:n])

	assert.Equal(t, s.checkSelBrace, restored.checkSelBrace)
	assert.Equal(t, s.insideInterpolationVariable, restored.insideInterpolationVariable)
	assert.Equal(t, s.openHeredocs, restored.openHeredocs)
}

func TestSerializeEmptyState(t *testing.T) {
	s := New()
	buf := make([]byte, 16)
	n := s.Serialize(buf)
	assert.Greater(t, n, 0)

	restored := New()
	restored.pushHeredoc(Heredoc{Word: []rune("LEFTOVER")})
	restored.Deserialize(buf[:n])
	assert.Nil(t, restored.openHeredocs)
}

func TestDeserializeEmptyBufferClearsState(t *testing.T) {
	s := New()
	s.checkSelBrace = true
	s.pushHeredoc(Heredoc{Word: []rune("END")})
	s.Deserialize(nil)
	assert.False(t, s.checkSelBrace)
	assert.Nil(t, s.openHeredocs)
}

func TestSerializeOverflowReturnsZero(t *testing.T) {
	s := New()
	s.pushHeredoc(Heredoc{Word: []rune("END")})
	buf := make([]byte, 2)
	assert.Equal(t, 0, s.Serialize(buf))
}

func TestDeserializeLengthMismatchPanics(t *testing.T) {
	s := New()
	assert.Panics(t, func() {
		s.Deserialize([]byte{0, 0, 0, 1})
	})
}
