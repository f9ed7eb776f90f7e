package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/picobot-ai/picobot/internal/agent"
	"github.com/picobot-ai/picobot/internal/app"
	"github.com/picobot-ai/picobot/internal/config"
	"github.com/picobot-ai/picobot/internal/logger"
	"github.com/picobot-ai/picobot/internal/run"
	"github.com/picobot-ai/picobot/internal/stream"
)

var (
	messageFlag string
	tlvFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "picobot",
	Short: "A minimal skills-first AI agent",
	Long: `picobot is a thin layer of configuration and glue around a hosted
agent runtime. Capability lives in skills: markdown instruction files
the agent reads on demand.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
		logger.SetFormat(cfg.LogFormat)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if messageFlag == "" {
			return cmd.Help()
		}

		a, err := app.Setup(config.Load())
		if err != nil {
			return err
		}

		var processor *agent.Processor
		if tlvFlag {
			out := &stream.GenericWriter{Writer: bufio.NewWriter(os.Stdout)}
			processor = agent.NewProcessorWithOutput(a.CreateAgent(), out)
		} else {
			processor = agent.NewProcessor(a.CreateAgent())
		}
		return run.New(processor, a.Cfg.Model).RunSingle(cmd.Context(), messageFlag)
	},
}

func init() {
	config.Init()

	rootCmd.Flags().StringVarP(&messageFlag, "message", "m", "", "run a single message and exit")
	rootCmd.Flags().BoolVar(&tlvFlag, "tlv", false, "emit TLV-framed records on stdout instead of styled text (for piping)")

	flags := rootCmd.PersistentFlags()
	flags.String("workspace", "", "workspace directory (default: current directory)")
	flags.String("provider", "anthropic", "LLM provider (anthropic or openai)")
	flags.String("model", "", "model name")
	flags.String("base-url", "", "override the provider API base URL")
	flags.String("system", "", "override the built-in system prompt")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.Bool("debug-api", false, "log raw provider API traffic to a file")

	for _, name := range []string{"workspace", "provider", "model", "base-url", "system", "log-level", "log-format", "debug-api"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}
