// Package run executes single-shot and interactive agent sessions on
// the terminal.
package run

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"charm.land/fantasy"

	"github.com/picobot-ai/picobot/internal/agent"
	"github.com/picobot-ai/picobot/internal/terminal"
)

// Runner drives the processor with per-session message history.
type Runner struct {
	Processor *agent.Processor
	Messages  []fantasy.Message
	ModelName string
}

// New creates a Runner.
func New(processor *agent.Processor, modelName string) *Runner {
	return &Runner{
		Processor: processor,
		ModelName: modelName,
	}
}

// RunSingle runs one prompt and returns.
func (r *Runner) RunSingle(ctx context.Context, prompt string) error {
	_, err := r.Processor.ProcessPrompt(ctx, prompt, r.Messages)
	return err
}

// inflight holds the cancel function of the request currently being
// processed. The signal handler and the prompt loop both touch it, so
// all access goes through the mutex.
type inflight struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

func (f *inflight) begin(cancel context.CancelFunc) {
	f.mu.Lock()
	f.cancel = cancel
	f.mu.Unlock()
}

func (f *inflight) end() {
	f.mu.Lock()
	f.cancel = nil
	f.mu.Unlock()
}

// interrupt cancels the in-flight request, if any, and reports whether
// there was one.
func (f *inflight) interrupt() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel == nil {
		return false
	}
	f.cancel()
	f.cancel = nil
	return true
}

// RunInteractive starts a line-based REPL. Ctrl-C cancels an in-flight
// request without quitting the session; EOF ends it.
func (r *Runner) RunInteractive(ctx context.Context) error {
	var state inflight

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)

	go func() {
		for range sigChan {
			if state.interrupt() {
				fmt.Println("\nRequest cancelled.")
			}
		}
	}()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(terminal.Cyan(fmt.Sprintf("[%s] > ", r.ModelName)))

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}

		prompt := strings.TrimSpace(line)
		if prompt == "" {
			continue
		}
		if prompt == "/quit" || prompt == "/exit" {
			return nil
		}

		// Each request gets its own context so cancelling one never
		// poisons the session.
		reqCtx, cancel := context.WithCancel(ctx)
		state.begin(cancel)
		responseText, err := r.Processor.ProcessPrompt(reqCtx, prompt, r.Messages)
		state.end()
		cancel()

		if err != nil {
			continue
		}

		r.Messages = append(r.Messages, fantasy.NewUserMessage(prompt))
		if responseText != "" {
			r.Messages = append(r.Messages, fantasy.Message{
				Role:    fantasy.MessageRoleAssistant,
				Content: []fantasy.MessagePart{fantasy.TextPart{Text: responseText}},
			})
		}
	}
}
