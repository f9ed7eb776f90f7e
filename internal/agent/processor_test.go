package agent

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRenderTextDeltaEmpty(t *testing.T) {
	var buf bytes.Buffer
	// Providers may deliver empty deltas, including as the first delta of
	// a response; state and output must stay unchanged.
	assert.False(t, renderTextDelta(&buf, "", false))
	assert.True(t, renderTextDelta(&buf, "", true))
	assert.Zero(t, buf.Len())
}

func TestRenderTextDeltaTracksLineStart(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, renderTextDelta(&buf, "hello", false))
	assert.True(t, renderTextDelta(&buf, " world\n", false))
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "world")
}

func TestRenderTextDeltaCollapsesLeadingNewlines(t *testing.T) {
	var buf bytes.Buffer
	// All-newline delta at a line start prints nothing.
	assert.True(t, renderTextDelta(&buf, "\n\n", true))
	assert.Zero(t, buf.Len())

	assert.False(t, renderTextDelta(&buf, "\n\nnext", true))
	assert.Contains(t, buf.String(), "next")
	assert.NotContains(t, buf.String(), "\n")
}

func TestSummarizeToolCallTruncatesOnRuneBoundary(t *testing.T) {
	input := `{"content":"` + strings.Repeat("日本語", 40) + `"}`
	out := summarizeToolCall("write_file", input)
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "…")
}
