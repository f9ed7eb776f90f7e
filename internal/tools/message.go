package tools

import (
	"context"

	"charm.land/fantasy"

	"github.com/picobot-ai/picobot/internal/logger"
	"github.com/picobot-ai/picobot/internal/outbox"
)

// MessageInput is the input for the message tool.
type MessageInput struct {
	Content string `json:"content" description:"The message text to record"`
	Channel string `json:"channel,omitempty" description:"Delivery channel label (default: local)"`
	ChatID  string `json:"chat_id,omitempty" description:"Conversation identifier (default: default)"`
}

// NewMessageTool creates a tool that records outbound messages in the
// workspace outbox log.
func NewMessageTool(log *outbox.Log) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"message",
		"Record an outbound message to the local outbox log.",
		func(ctx context.Context, input MessageInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			if input.Content == "" {
				return fantasy.NewTextErrorResponse("content is required"), nil
			}
			channel := input.Channel
			if channel == "" {
				channel = "local"
			}
			chatID := input.ChatID
			if chatID == "" {
				chatID = "default"
			}

			if err := log.Append(channel, chatID, input.Content); err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			logger.G(ctx).WithField("channel", channel).Debug("message recorded")
			return fantasy.NewTextResponse("Message recorded to " + log.Path()), nil
		},
	)
}
