// Package app wires configuration, the skill registry, the tool set and
// the external agent runtime into a ready-to-run agent.
package app

import (
	"context"
	"strings"

	"charm.land/fantasy"
	"charm.land/fantasy/providers/anthropic"
	"charm.land/fantasy/providers/openai"
	"charm.land/fantasy/providers/openaicompat"
	"github.com/pkg/errors"

	agentpkg "github.com/picobot-ai/picobot/internal/agent"
	"github.com/picobot-ai/picobot/internal/config"
	"github.com/picobot-ai/picobot/internal/cron"
	debugpkg "github.com/picobot-ai/picobot/internal/debug"
	"github.com/picobot-ai/picobot/internal/outbox"
	"github.com/picobot-ai/picobot/internal/skills"
	"github.com/picobot-ai/picobot/internal/tools"
	"github.com/picobot-ai/picobot/internal/workspace"
)

// App holds the assembled components.
type App struct {
	Cfg          *config.Settings
	Workspace    *workspace.Workspace
	Registry     *skills.Registry
	Model        fantasy.LanguageModel
	AgentTools   []fantasy.AgentTool
	SystemPrompt string
}

// Setup builds all components from the settings.
func Setup(cfg *config.Settings) (*App, error) {
	providerConfig, err := cfg.GetProviderConfig()
	if err != nil {
		return nil, errors.Wrap(err, "resolving provider config")
	}

	provider, err := createProvider(providerConfig.Provider, providerConfig.APIKey, providerConfig.BaseURL, cfg.DebugAPI)
	if err != nil {
		return nil, errors.Wrap(err, "creating provider")
	}

	model, err := provider.LanguageModel(context.Background(), providerConfig.ModelName)
	if err != nil {
		return nil, errors.Wrap(err, "creating language model")
	}

	ws := workspace.New(cfg.Workspace)
	registry := skills.NewRegistry(cfg.WorkspaceSkillsDir(), cfg.BuiltinSkillsDir)
	outboxLog := outbox.New(ws.Root())
	cronStore := cron.NewStore(ws.Root())

	agentTools := []fantasy.AgentTool{
		tools.NewListSkillsTool(registry),
		tools.NewReadSkillTool(registry),
		tools.NewReadFileTool(ws),
		tools.NewWriteFileTool(ws),
		tools.NewEditFileTool(ws),
		tools.NewListDirTool(ws),
		tools.NewExecTool(ws),
		tools.NewWebSearchTool(cfg.BraveAPIKey),
		tools.NewWebFetchTool(),
		tools.NewMessageTool(outboxLog),
		tools.NewCronTool(cronStore),
	}

	return &App{
		Cfg:          cfg,
		Workspace:    ws,
		Registry:     registry,
		Model:        model,
		AgentTools:   agentTools,
		SystemPrompt: agentpkg.BuildSystemPrompt(cfg.SystemPrompt, ws.Root(), registry.Summary()),
	}, nil
}

// CreateAgent creates a fantasy agent with the configured tools and
// system prompt. Each call returns an independent agent.
func (a *App) CreateAgent() fantasy.Agent {
	return fantasy.NewAgent(
		a.Model,
		fantasy.WithTools(a.AgentTools...),
		fantasy.WithSystemPrompt(a.SystemPrompt),
	)
}

// AgentFactory returns a constructor for per-session agents.
func (a *App) AgentFactory() func() fantasy.Agent {
	return a.CreateAgent
}

type languageModelProvider interface {
	LanguageModel(context.Context, string) (fantasy.LanguageModel, error)
}

func createProvider(provider, apiKey, baseURL string, debugAPI bool) (languageModelProvider, error) {
	switch provider {
	case "anthropic":
		return createAnthropicProvider(apiKey, baseURL, debugAPI)
	default:
		return createOpenAIProvider(apiKey, baseURL, debugAPI)
	}
}

func createAnthropicProvider(apiKey, baseURL string, debugAPI bool) (languageModelProvider, error) {
	var opts []anthropic.Option
	opts = append(opts, anthropic.WithAPIKey(apiKey))
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	if debugAPI {
		opts = append(opts, anthropic.WithHTTPClient(debugpkg.NewHTTPClient()))
	}
	return anthropic.New(opts...)
}

func createOpenAIProvider(apiKey, baseURL string, debugAPI bool) (languageModelProvider, error) {
	// Non-OpenAI base URLs (Ollama, LM Studio, DeepSeek, ...) go through
	// the compat provider, which supports reasoning content.
	if baseURL != "" && !strings.Contains(baseURL, "api.openai.com") {
		var opts []openaicompat.Option
		opts = append(opts, openaicompat.WithAPIKey(apiKey), openaicompat.WithBaseURL(baseURL))
		if debugAPI {
			opts = append(opts, openaicompat.WithHTTPClient(debugpkg.NewHTTPClient()))
		}
		return openaicompat.New(opts...)
	}

	var opts []openai.Option
	opts = append(opts, openai.WithAPIKey(apiKey))
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if debugAPI {
		opts = append(opts, openai.WithHTTPClient(debugpkg.NewHTTPClient()))
	}
	return openai.New(opts...)
}
