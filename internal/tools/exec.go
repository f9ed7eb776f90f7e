package tools

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"charm.land/fantasy"
	"github.com/pkg/errors"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/picobot-ai/picobot/internal/logger"
	"github.com/picobot-ai/picobot/internal/workspace"
)

const (
	defaultExecTimeout = 60 * time.Second
	maxExecOutput      = 12000
)

// denyPatterns blocks obviously destructive commands before the
// interpreter sees them.
var denyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\brm\s+-[rf]{1,2}\b`),
	regexp.MustCompile(`\bdel\s+/[fq]\b`),
	regexp.MustCompile(`\brmdir\s+/s\b`),
	regexp.MustCompile(`\b(format|mkfs|diskpart)\b`),
	regexp.MustCompile(`\bdd\s+if=`),
	regexp.MustCompile(`>\s*/dev/sd`),
	regexp.MustCompile(`\b(shutdown|reboot|poweroff)\b`),
	regexp.MustCompile(`:\(\)\s*\{.*\};\s*:`),
}

// ExecInput is the input for the exec tool.
type ExecInput struct {
	Command    string `json:"command" description:"The shell command to execute"`
	WorkingDir string `json:"working_dir,omitempty" description:"Working directory, resolved against the workspace (default: workspace root)"`
	Timeout    int    `json:"timeout,omitempty" description:"Timeout in seconds (default 60)"`
}

// NewExecTool creates the exec tool. Commands run through the embedded
// POSIX interpreter rather than an external shell.
func NewExecTool(ws *workspace.Workspace) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"exec",
		"Execute a shell command and return its stdout, stderr and exit code.",
		func(ctx context.Context, input ExecInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			output, err := runCommand(ctx, ws, input)
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			return fantasy.NewTextResponse(output), nil
		},
	)
}

func runCommand(ctx context.Context, ws *workspace.Workspace, input ExecInput) (string, error) {
	cmd := strings.TrimSpace(input.Command)
	if cmd == "" {
		return "", errors.New("command is required")
	}

	lower := strings.ToLower(cmd)
	for _, pattern := range denyPatterns {
		if pattern.MatchString(lower) {
			return "", errors.New("command blocked by safety guard (dangerous pattern detected)")
		}
	}

	dir := ws.Root()
	if input.WorkingDir != "" {
		dir = ws.Resolve(input.WorkingDir)
	}

	timeout := defaultExecTimeout
	if input.Timeout > 0 {
		timeout = time.Duration(input.Timeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.G(ctx).WithFields(map[string]any{"command": cmd, "dir": dir}).Debug("exec")

	prog, err := syntax.NewParser().Parse(strings.NewReader(cmd), "")
	if err != nil {
		return "", errors.Wrap(err, "parse error")
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(strings.NewReader(""), &stdout, &stderr),
	)
	if err != nil {
		return "", errors.Wrap(err, "creating shell runner")
	}

	runErr := runner.Run(ctx, prog)
	if ctx.Err() == context.DeadlineExceeded {
		return "", errors.Errorf("command timed out after %d seconds", int(timeout.Seconds()))
	}

	exitCode := 0
	if runErr != nil {
		var status interp.ExitStatus
		if errors.As(runErr, &status) {
			exitCode = int(status)
		} else {
			return "", errors.Wrap(runErr, "executing command")
		}
	}

	var parts []string
	if stdout.Len() > 0 {
		parts = append(parts, stdout.String())
	}
	if stderr.Len() > 0 {
		parts = append(parts, "STDERR:\n"+stderr.String())
	}
	if exitCode != 0 {
		parts = append(parts, fmt.Sprintf("Exit code: %d", exitCode))
	}

	result := strings.TrimSpace(strings.Join(parts, "\n"))
	if result == "" {
		result = "(no output)"
	}
	return truncate(result, maxExecOutput), nil
}

// truncate caps tool output, noting how much was dropped.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + fmt.Sprintf("\n... (truncated, %d more chars)", len(s)-max)
}
