package cron

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddListRemove(t *testing.T) {
	store := NewStore(t.TempDir())

	job, err := store.Add("check the mailbox every morning", EverySchedule(3600))
	require.NoError(t, err)
	assert.Len(t, job.ID, 8)
	assert.Equal(t, "check the mailbox every morning"[:30], job.Name)
	assert.Equal(t, "every:3600s", job.Schedule)

	jobs := store.List()
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)

	require.NoError(t, store.Remove(job.ID))
	assert.Empty(t, store.List())
}

func TestAddTruncatesNameOnRuneBoundary(t *testing.T) {
	store := NewStore(t.TempDir())

	job, err := store.Add(strings.Repeat("héllo ", 10), EverySchedule(60))
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(job.Name))
	assert.Len(t, []rune(job.Name), 30)
}

func TestRemoveUnknownID(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Add("ping", AtSchedule("2026-09-01T09:00"))
	require.NoError(t, err)

	err = store.Remove("deadbeef")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJobNotFound)
	// Store must be untouched.
	assert.Len(t, store.List(), 1)
}

func TestListCorruptStore(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".picobot"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".picobot", "cron_jobs.json"), []byte("{broken"), 0o644))
	assert.Empty(t, store.List())
}

func TestScheduleFormats(t *testing.T) {
	assert.Equal(t, "every:90s", EverySchedule(90))
	assert.Equal(t, "cron:0 9 * * *", ExprSchedule("0 9 * * *"))
	assert.Equal(t, "at:2026-09-01T09:00", AtSchedule("2026-09-01T09:00"))
}
