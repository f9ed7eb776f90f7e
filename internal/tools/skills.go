package tools

import (
	"context"
	"encoding/json"

	"charm.land/fantasy"

	"github.com/picobot-ai/picobot/internal/logger"
	"github.com/picobot-ai/picobot/internal/skills"
)

// ListSkillsInput is the (empty) input for the list_skills tool.
type ListSkillsInput struct{}

// ReadSkillInput is the input for the read_skill tool.
type ReadSkillInput struct {
	Name string `json:"name" description:"The name of the skill to read"`
}

// NewListSkillsTool exposes skill discovery to the agent runtime.
func NewListSkillsTool(registry *skills.Registry) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"list_skills",
		"List the available skills as a JSON array of {name, description, source, location} records.",
		func(ctx context.Context, _ ListSkillsInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			records := registry.Discover()
			if records == nil {
				records = []skills.Record{}
			}
			payload, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			logger.G(ctx).WithField("count", len(records)).Debug("listed skills")
			return fantasy.NewTextResponse(string(payload)), nil
		},
	)
}

// NewReadSkillTool exposes full SKILL.md retrieval to the agent runtime.
func NewReadSkillTool(registry *skills.Registry) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"read_skill",
		"Read the full SKILL.md of a skill by name. Always read a skill before following it.",
		func(ctx context.Context, input ReadSkillInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			content, err := registry.Read(input.Name)
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			logger.G(ctx).WithField("skill", input.Name).Debug("read skill")
			return fantasy.NewTextResponse(content), nil
		},
	)
}
