package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/picobot-ai/picobot/internal/config"
	"github.com/picobot-ai/picobot/internal/skills"
	"github.com/picobot-ai/picobot/internal/terminal"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		healthy := true

		check := func(ok bool, label, detail string) {
			mark := terminal.Green("✓")
			if !ok {
				mark = terminal.Red("✗")
				healthy = false
			}
			fmt.Printf("%s %s", mark, label)
			if detail != "" {
				fmt.Printf(" %s", terminal.Dim(detail))
			}
			fmt.Println()
		}

		info, err := os.Stat(cfg.Workspace)
		check(err == nil && info.IsDir(), "workspace", cfg.Workspace)

		registry := skills.NewRegistry(cfg.WorkspaceSkillsDir(), cfg.BuiltinSkillsDir)
		records := registry.Discover()
		var workspaceCount, builtinCount int
		for _, r := range records {
			if r.Source == skills.SourceWorkspace {
				workspaceCount++
			} else {
				builtinCount++
			}
		}
		check(true, "skills", fmt.Sprintf("%d workspace, %d builtin", workspaceCount, builtinCount))

		providerConfig, err := cfg.GetProviderConfig()
		if err != nil {
			check(false, "provider", err.Error())
		} else {
			check(true, "provider", fmt.Sprintf("%s / %s", providerConfig.Provider, providerConfig.ModelName))
		}

		// Missing Brave key only disables web_search, so warn instead of fail.
		if cfg.BraveAPIKey == "" {
			fmt.Printf("%s brave search %s\n", terminal.Yellow("!"), terminal.Dim("BRAVE_API_KEY not set, web_search disabled"))
		} else {
			check(true, "brave search", "key configured")
		}

		if !healthy {
			return fmt.Errorf("some checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
