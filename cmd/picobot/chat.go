package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/picobot-ai/picobot/internal/agent"
	"github.com/picobot-ai/picobot/internal/app"
	"github.com/picobot-ai/picobot/internal/config"
	"github.com/picobot-ai/picobot/internal/run"
	"github.com/picobot-ai/picobot/internal/terminal"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Setup(config.Load())
		if err != nil {
			return err
		}

		fmt.Println(terminal.Dim("Type /quit or /exit to leave, Ctrl-C to cancel a request."))

		processor := agent.NewProcessor(a.CreateAgent())
		return run.New(processor, a.Cfg.Model).RunInteractive(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
