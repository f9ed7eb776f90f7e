package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cronstore "github.com/picobot-ai/picobot/internal/cron"
)

func TestCronAddAndList(t *testing.T) {
	store := cronstore.NewStore(t.TempDir())

	result, err := cronAction(store, CronInput{Action: "add", Message: "water the plants", EverySeconds: 86400})
	require.NoError(t, err)
	assert.Contains(t, result, `Created job "water the plants"`)

	listed, err := cronAction(store, CronInput{Action: "list"})
	require.NoError(t, err)
	assert.Contains(t, listed, "water the plants")
	assert.Contains(t, listed, "every:86400s")
}

func TestCronListEmpty(t *testing.T) {
	store := cronstore.NewStore(t.TempDir())
	result, err := cronAction(store, CronInput{Action: "list"})
	require.NoError(t, err)
	assert.Equal(t, "No scheduled jobs.", result)
}

func TestCronAddRequiresSchedule(t *testing.T) {
	store := cronstore.NewStore(t.TempDir())
	_, err := cronAction(store, CronInput{Action: "add", Message: "m"})
	require.Error(t, err)
}

func TestCronAddRequiresMessage(t *testing.T) {
	store := cronstore.NewStore(t.TempDir())
	_, err := cronAction(store, CronInput{Action: "add", EverySeconds: 60})
	require.Error(t, err)
}

func TestCronRemove(t *testing.T) {
	store := cronstore.NewStore(t.TempDir())
	_, err := cronAction(store, CronInput{Action: "add", Message: "m", At: "2026-09-01T09:00"})
	require.NoError(t, err)

	jobs := store.List()
	require.Len(t, jobs, 1)

	result, err := cronAction(store, CronInput{Action: "remove", JobID: jobs[0].ID})
	require.NoError(t, err)
	assert.Contains(t, result, "Removed job")
	assert.Empty(t, store.List())
}

func TestCronRemoveUnknown(t *testing.T) {
	store := cronstore.NewStore(t.TempDir())
	_, err := cronAction(store, CronInput{Action: "remove", JobID: "nope1234"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cronstore.ErrJobNotFound)
}

func TestCronUnknownAction(t *testing.T) {
	store := cronstore.NewStore(t.TempDir())
	_, err := cronAction(store, CronInput{Action: "pause"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}
