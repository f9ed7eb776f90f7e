package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/picobot-ai/picobot/internal/config"
	"github.com/picobot-ai/picobot/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List available skills as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		registry := skills.NewRegistry(cfg.WorkspaceSkillsDir(), cfg.BuiltinSkillsDir)

		records := registry.Discover()
		if records == nil {
			records = []skills.Record{}
		}

		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}
