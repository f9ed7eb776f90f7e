// Package cron persists scheduled message jobs in a JSON file under the
// workspace. The store only records jobs; an external scheduler (or the
// agent itself) decides when to act on them.
package cron

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrJobNotFound is returned when removing an unknown job id.
var ErrJobNotFound = errors.New("job not found")

// Job is one persisted scheduled job.
type Job struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Schedule  string `json:"schedule"`
	CreatedAt string `json:"created_at"`
}

// Store is a whole-file JSON job store.
type Store struct {
	path string
}

// NewStore creates a store at <workspaceRoot>/.picobot/cron_jobs.json.
func NewStore(workspaceRoot string) *Store {
	return &Store{path: filepath.Join(workspaceRoot, ".picobot", "cron_jobs.json")}
}

// List returns all persisted jobs. A missing or corrupt store file reads
// as empty.
func (s *Store) List() []Job {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil
	}
	return jobs
}

// Add persists a new job with the given schedule and returns it. The job
// name is a truncated preview of the message.
func (s *Store) Add(message, schedule string) (Job, error) {
	name := message
	if runes := []rune(name); len(runes) > 30 {
		name = string(runes[:30])
	}
	job := Job{
		ID:        uuid.NewString()[:8],
		Name:      name,
		Message:   message,
		Schedule:  schedule,
		CreatedAt: time.Now().Format("2006-01-02T15:04:05"),
	}

	jobs := append(s.List(), job)
	if err := s.save(jobs); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Remove deletes a job by id.
func (s *Store) Remove(id string) error {
	jobs := s.List()
	kept := jobs[:0]
	for _, job := range jobs {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	if len(kept) == len(jobs) {
		return errors.Wrapf(ErrJobNotFound, "%q", id)
	}
	return s.save(kept)
}

// EverySchedule formats an interval schedule.
func EverySchedule(seconds int) string {
	return fmt.Sprintf("every:%ds", seconds)
}

// ExprSchedule formats a cron-expression schedule.
func ExprSchedule(expr string) string {
	return "cron:" + expr
}

// AtSchedule formats a one-shot schedule.
func AtSchedule(at string) string {
	return "at:" + at
}

func (s *Store) save(jobs []Job) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "creating cron store directory")
	}
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding cron jobs")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing cron store")
	}
	return nil
}
