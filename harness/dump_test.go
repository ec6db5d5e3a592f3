package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpTokensIncludesIndexAndText(t *testing.T) {
	d := NewDriver("?{")
	tokens := d.Tokenize()

	out := DumpTokens(tokens)
	assert.Contains(t, out, "QMARK")
	assert.Contains(t, out, "SELBRACE")
	assert.Equal(t, len(tokens), strings.Count(out, "\n"))
}

func TestDumpScannerAfterClosedHeredocIsNonEmpty(t *testing.T) {
	d := NewDriver("@(END)\n  hi\n  END")
	d.Tokenize()

	out := DumpScanner(d.Scanner())
	assert.NotEmpty(t, out)
}
