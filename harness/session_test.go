package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionAssignsUniqueIDs(t *testing.T) {
	a := NewSession("?")
	b := NewSession("?")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSessionSnapshotMatchesDriverScanner(t *testing.T) {
	s := NewSession("@(END)\n  hi\n  END")
	s.Driver.Tokenize()

	buf := make([]byte, 256)
	n := s.Snapshot(buf)
	assert.Equal(t, s.Driver.Scanner().Serialize(make([]byte, 256)), n)
}
