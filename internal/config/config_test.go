package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	InitViper(v)
	return v
}

func TestDefaults(t *testing.T) {
	v := newTestViper(t)
	s := LoadFrom(v)

	assert.Equal(t, "anthropic", s.ProviderType)
	assert.NotEmpty(t, s.Model)
	assert.NotEmpty(t, s.Workspace)
	assert.Equal(t, ":8080", s.Addr)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PICOBOT_WORKSPACE", "/tmp/picows")
	t.Setenv("PICOBOT_MODEL", "gpt-4o")
	t.Setenv("BRAVE_API_KEY", "brave-test")

	v := newTestViper(t)
	s := LoadFrom(v)

	assert.Equal(t, "/tmp/picows", s.Workspace)
	assert.Equal(t, "gpt-4o", s.Model)
	assert.Equal(t, "brave-test", s.BraveAPIKey)
}

func TestWorkspaceSkillsDir(t *testing.T) {
	s := &Settings{Workspace: "/tmp/picows"}
	assert.Equal(t, "/tmp/picows/skills", s.WorkspaceSkillsDir())
}

func TestGetProviderConfigRequiresKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	s := &Settings{ProviderType: "anthropic", Model: "claude-sonnet-4-20250514"}
	_, err := s.GetProviderConfig()
	require.Error(t, err)
}

func TestGetProviderConfigBadProvider(t *testing.T) {
	s := &Settings{ProviderType: "gemini", Model: "x", APIKey: "k"}
	_, err := s.GetProviderConfig()
	require.Error(t, err)
}
