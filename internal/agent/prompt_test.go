package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt("", "/tmp/ws", "<skills>\n</skills>")
	assert.Contains(t, prompt, "You are picobot")
	assert.Contains(t, prompt, "Workspace: /tmp/ws")
	assert.Contains(t, prompt, "Available skills:\n<skills>")
}

func TestBuildSystemPromptOverride(t *testing.T) {
	prompt := BuildSystemPrompt("Custom role.", "/tmp/ws", "<skills>\n</skills>")
	assert.Contains(t, prompt, "Custom role.")
	assert.NotContains(t, prompt, "You are picobot")
	// Skills summary is appended even with an override.
	assert.Contains(t, prompt, "<skills>")
}

func TestSummarizeToolCall(t *testing.T) {
	assert.Equal(t, "ls -la", summarizeToolCall("exec", `{"command":"ls -la"}`))
	assert.Equal(t, "read_file {\"path\":\"a.txt\"}", summarizeToolCall("read_file", `{"path":"a.txt"}`))
	assert.Equal(t, "list_skills", summarizeToolCall("list_skills", "{}"))
	assert.Equal(t, "echo a\\nb", summarizeToolCall("exec", `{"command":"echo a\nb"}`))
}
