// Package config loads picobot settings from flags, environment
// variables (PICOBOT_ prefix) and an optional ~/.picobot/config.yaml.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/picobot-ai/picobot/internal/provider"
)

const Version = "0.2.0"

// Settings holds all resolved configuration.
type Settings struct {
	Workspace        string
	BuiltinSkillsDir string
	ProviderType     string
	Model            string
	BaseURL          string
	APIKey           string
	BraveAPIKey      string
	SystemPrompt     string
	LogLevel         string
	LogFormat        string
	Addr             string
	DebugAPI         bool
}

// Init wires defaults, environment and config file into the global viper
// instance. Call once before Load.
func Init() {
	InitViper(viper.GetViper())
}

// InitViper configures a viper instance; split out so tests can use a
// private instance.
func InitViper(v *viper.Viper) {
	v.SetEnvPrefix("PICOBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// The Brave key is conventionally unprefixed.
	_ = v.BindEnv("brave-api-key", "BRAVE_API_KEY", "PICOBOT_BRAVE_API_KEY")

	v.SetDefault("provider", "anthropic")
	v.SetDefault("model", "claude-sonnet-4-20250514")
	v.SetDefault("builtin-skills-dir", defaultBuiltinSkillsDir())
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "text")
	v.SetDefault("addr", ":8080")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".picobot"))
	}
	v.AddConfigPath(".")
	_ = v.ReadInConfig()
}

// Load resolves settings from the global viper instance.
func Load() *Settings {
	return LoadFrom(viper.GetViper())
}

// LoadFrom resolves settings from the given viper instance.
func LoadFrom(v *viper.Viper) *Settings {
	workspace := v.GetString("workspace")
	if workspace == "" {
		workspace, _ = os.Getwd()
	}

	return &Settings{
		Workspace:        workspace,
		BuiltinSkillsDir: v.GetString("builtin-skills-dir"),
		ProviderType:     v.GetString("provider"),
		Model:            v.GetString("model"),
		BaseURL:          v.GetString("base-url"),
		APIKey:           v.GetString("api-key"),
		BraveAPIKey:      v.GetString("brave-api-key"),
		SystemPrompt:     v.GetString("system"),
		LogLevel:         v.GetString("log-level"),
		LogFormat:        v.GetString("log-format"),
		Addr:             v.GetString("addr"),
		DebugAPI:         v.GetBool("debug-api"),
	}
}

// WorkspaceSkillsDir is the workspace-local skills root.
func (s *Settings) WorkspaceSkillsDir() string {
	return filepath.Join(s.Workspace, "skills")
}

// GetProviderConfig resolves the LLM provider configuration.
func (s *Settings) GetProviderConfig() (*provider.Config, error) {
	return provider.Resolve(s.ProviderType, s.APIKey, s.BaseURL, s.Model)
}

// defaultBuiltinSkillsDir is the skills directory shipped next to the
// binary.
func defaultBuiltinSkillsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "skills"
	}
	return filepath.Join(filepath.Dir(exe), "skills")
}
