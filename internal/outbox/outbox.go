// Package outbox records outbound agent messages in an append-only
// JSON-lines log under the workspace.
package outbox

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Entry is one recorded outbound message.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Channel   string `json:"channel"`
	ChatID    string `json:"chat_id"`
	Content   string `json:"content"`
}

// Log is an append-only message log backed by a single file.
type Log struct {
	path string
}

// New creates a log at <workspaceRoot>/messages/outbox.log.
func New(workspaceRoot string) *Log {
	return &Log{path: filepath.Join(workspaceRoot, "messages", "outbox.log")}
}

// Path returns the log file location.
func (l *Log) Path() string {
	return l.path
}

// Append records one message. Each record is a single JSON line.
func (l *Log) Append(channel, chatID, content string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return errors.Wrap(err, "creating outbox directory")
	}

	entry := Entry{
		Timestamp: time.Now().Format("2006-01-02T15:04:05"),
		Channel:   channel,
		ChatID:    chatID,
		Content:   content,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "encoding outbox entry")
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "opening outbox")
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return errors.Wrap(err, "writing outbox entry")
	}
	return nil
}
