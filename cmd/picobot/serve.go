package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/picobot-ai/picobot/internal/app"
	"github.com/picobot-ai/picobot/internal/config"
	"github.com/picobot-ai/picobot/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the agent over WebSocket with a browser chat page",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		a, err := app.Setup(cfg)
		if err != nil {
			return err
		}

		return server.New(cfg.Addr, a.AgentFactory()).ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}
