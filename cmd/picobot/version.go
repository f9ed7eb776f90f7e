package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/picobot-ai/picobot/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the picobot version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("picobot", config.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
