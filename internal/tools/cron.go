package tools

import (
	"context"
	"fmt"
	"strings"

	"charm.land/fantasy"
	"github.com/pkg/errors"

	cronstore "github.com/picobot-ai/picobot/internal/cron"
)

// CronInput is the input for the cron tool.
type CronInput struct {
	Action       string `json:"action" description:"One of: add, list, remove"`
	Message      string `json:"message,omitempty" description:"Message to deliver when the job fires (required for add)"`
	EverySeconds int    `json:"every_seconds,omitempty" description:"Interval schedule in seconds"`
	CronExpr     string `json:"cron_expr,omitempty" description:"Cron expression schedule"`
	At           string `json:"at,omitempty" description:"One-shot timestamp schedule"`
	JobID        string `json:"job_id,omitempty" description:"Job id (required for remove)"`
}

// NewCronTool creates a tool for managing persisted scheduled jobs.
func NewCronTool(store *cronstore.Store) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"cron",
		"Manage persisted scheduled jobs: add, list or remove.",
		func(ctx context.Context, input CronInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			result, err := cronAction(store, input)
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			return fantasy.NewTextResponse(result), nil
		},
	)
}

func cronAction(store *cronstore.Store, input CronInput) (string, error) {
	switch input.Action {
	case "list":
		jobs := store.List()
		if len(jobs) == 0 {
			return "No scheduled jobs.", nil
		}
		lines := []string{"Scheduled jobs:"}
		for _, job := range jobs {
			lines = append(lines, fmt.Sprintf("- %s (id: %s, %s)", job.Name, job.ID, job.Schedule))
		}
		return strings.Join(lines, "\n"), nil

	case "remove":
		if input.JobID == "" {
			return "", errors.New("job_id is required for remove")
		}
		if err := store.Remove(input.JobID); err != nil {
			return "", err
		}
		return "Removed job " + input.JobID, nil

	case "add":
		if input.Message == "" {
			return "", errors.New("message is required for add")
		}
		var schedule string
		switch {
		case input.EverySeconds > 0:
			schedule = cronstore.EverySchedule(input.EverySeconds)
		case input.CronExpr != "":
			schedule = cronstore.ExprSchedule(input.CronExpr)
		case input.At != "":
			schedule = cronstore.AtSchedule(input.At)
		default:
			return "", errors.New("either every_seconds, cron_expr, or at is required")
		}

		job, err := store.Add(input.Message, schedule)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created job %q (id: %s)", job.Name, job.ID), nil

	default:
		return "", errors.Errorf("unknown action: %s", input.Action)
	}
}
