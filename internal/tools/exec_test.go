package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommandEcho(t *testing.T) {
	ws := newWorkspace(t)
	output, err := runCommand(context.Background(), ws, ExecInput{Command: "echo hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", output)
}

func TestRunCommandStderrAndExitCode(t *testing.T) {
	ws := newWorkspace(t)
	output, err := runCommand(context.Background(), ws, ExecInput{Command: "echo warn >&2; exit 3"})
	require.NoError(t, err)
	assert.Contains(t, output, "STDERR:\nwarn")
	assert.Contains(t, output, "Exit code: 3")
}

func TestRunCommandNoOutput(t *testing.T) {
	ws := newWorkspace(t)
	output, err := runCommand(context.Background(), ws, ExecInput{Command: "true"})
	require.NoError(t, err)
	assert.Equal(t, "(no output)", output)
}

func TestRunCommandDenied(t *testing.T) {
	ws := newWorkspace(t)
	for _, cmd := range []string{
		"rm -rf /",
		"sudo reboot",
		"dd if=/dev/zero of=/dev/sda",
	} {
		_, err := runCommand(context.Background(), ws, ExecInput{Command: cmd})
		require.Error(t, err, cmd)
		assert.Contains(t, err.Error(), "safety guard")
	}
}

func TestRunCommandEmpty(t *testing.T) {
	ws := newWorkspace(t)
	_, err := runCommand(context.Background(), ws, ExecInput{Command: "   "})
	require.Error(t, err)
}

func TestRunCommandWorkingDir(t *testing.T) {
	ws := newWorkspace(t)
	output, err := runCommand(context.Background(), ws, ExecInput{Command: "pwd"})
	require.NoError(t, err)
	assert.Equal(t, ws.Root(), strings.TrimSpace(output))
}

func TestRunCommandTimeout(t *testing.T) {
	ws := newWorkspace(t)
	_, err := runCommand(context.Background(), ws, ExecInput{Command: "sleep 5", Timeout: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", maxExecOutput+10)
	out := truncate(long, maxExecOutput)
	assert.Contains(t, out, "truncated, 10 more chars")
	assert.True(t, len(out) < len(long)+40)

	assert.Equal(t, "short", truncate("short", maxExecOutput))
}
