// Package agent drives prompts through the external fantasy runtime and
// renders the streamed events.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"charm.land/fantasy"

	"github.com/picobot-ai/picobot/internal/stream"
	"github.com/picobot-ai/picobot/internal/terminal"
)

// Processor streams one prompt at a time through the agent. With a nil
// Output it renders to stdout with terminal styles; otherwise events are
// framed as TLV records on the Output.
type Processor struct {
	Agent  fantasy.Agent
	Output stream.Output
}

// NewProcessor creates a stdout-rendering processor.
func NewProcessor(agent fantasy.Agent) *Processor {
	return &Processor{Agent: agent}
}

// NewProcessorWithOutput creates a processor that frames events onto the
// given output.
func NewProcessorWithOutput(agent fantasy.Agent, output stream.Output) *Processor {
	return &Processor{Agent: agent, Output: output}
}

// ProcessPrompt runs one prompt with the given prior history and returns
// the final response text.
func (p *Processor) ProcessPrompt(ctx context.Context, prompt string, messages []fantasy.Message) (string, error) {
	streamCall := fantasy.AgentStreamCall{
		Prompt: prompt,
	}
	if len(messages) > 0 {
		streamCall.Messages = messages
	}

	var responseText strings.Builder
	var lastCharWasNewline bool

	streamCall.OnTextDelta = func(id, text string) error {
		responseText.WriteString(text)
		if p.Output != nil {
			if err := stream.WriteTLV(p.Output, stream.TagText, text); err != nil {
				return err
			}
			return p.Output.Flush()
		}

		lastCharWasNewline = renderTextDelta(os.Stdout, text, lastCharWasNewline)
		return nil
	}

	// Track in-flight tool calls to report status when they finish.
	toolCalls := make(map[string]string)
	var toolCallMutex sync.Mutex

	streamCall.OnToolCall = func(tc fantasy.ToolCallContent) error {
		summary := summarizeToolCall(tc.ToolName, tc.Input)
		toolCallMutex.Lock()
		toolCalls[tc.ToolCallID] = summary
		toolCallMutex.Unlock()

		if p.Output != nil {
			if err := stream.WriteTLV(p.Output, stream.TagTool, "→ "+summary); err != nil {
				return err
			}
			return p.Output.Flush()
		}

		if lastCharWasNewline {
			fmt.Printf("  %s%s", terminal.Dim("→ "), terminal.Green(summary))
		} else {
			fmt.Printf("\n  %s%s", terminal.Dim("→ "), terminal.Green(summary))
		}
		return nil
	}

	streamCall.OnToolResult = func(tr fantasy.ToolResultContent) error {
		toolCallMutex.Lock()
		summary, pending := toolCalls[tr.ToolCallID]
		delete(toolCalls, tr.ToolCallID)
		toolCallMutex.Unlock()
		if !pending {
			return nil
		}

		failed := tr.Result.GetType() == fantasy.ToolResultContentTypeError

		if p.Output != nil {
			status := "✓ " + summary
			if failed {
				status = "● " + summary
			}
			if err := stream.WriteTLV(p.Output, stream.TagTool, status); err != nil {
				return err
			}
			return p.Output.Flush()
		}

		if failed {
			fmt.Printf(" %s\n", terminal.Red("●"))
		} else {
			fmt.Printf(" %s\n", terminal.Green("✓"))
		}
		lastCharWasNewline = true
		return nil
	}

	_, err := p.Agent.Stream(ctx, streamCall)
	if err != nil {
		if p.Output != nil {
			_ = stream.WriteTLV(p.Output, stream.TagError, err.Error())
			_ = p.Output.Flush()
		} else {
			fmt.Println(terminal.Dim(fmt.Sprintf("Error: %v", err)))
		}
		return "", err
	}

	if p.Output != nil {
		if err := stream.WriteTLV(p.Output, stream.TagDone, ""); err != nil {
			return "", err
		}
		if err := p.Output.Flush(); err != nil {
			return "", err
		}
	} else {
		fmt.Println()
	}

	return responseText.String(), nil
}

// renderTextDelta prints one text delta, collapsing leading newlines
// when already at the start of a line. It reports whether the output now
// sits at a line start. Providers may emit empty deltas; those leave the
// state untouched.
func renderTextDelta(w io.Writer, text string, atLineStart bool) bool {
	if atLineStart {
		text = strings.TrimLeft(text, "\n")
	}
	if len(text) == 0 {
		return atLineStart
	}
	fmt.Fprint(w, terminal.Bright(text))
	return text[len(text)-1] == '\n'
}

// summarizeToolCall renders a one-line description of a tool call for
// progress display.
func summarizeToolCall(name, input string) string {
	display := name
	if name == "exec" {
		var execInput struct {
			Command string `json:"command"`
		}
		if err := json.Unmarshal([]byte(input), &execInput); err == nil && execInput.Command != "" {
			display = execInput.Command
		}
	} else if input != "" && input != "{}" {
		compact := input
		if runes := []rune(compact); len(runes) > 80 {
			compact = string(runes[:80]) + "…"
		}
		display = name + " " + compact
	}
	display = strings.ReplaceAll(display, "\n", "\\n")
	return strings.ReplaceAll(display, "\t", "\\t")
}
