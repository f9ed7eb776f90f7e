package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"charm.land/fantasy"
	"github.com/pkg/errors"

	"github.com/picobot-ai/picobot/internal/workspace"
)

// ReadFileInput is the input for the read_file tool.
type ReadFileInput struct {
	Path string `json:"path" description:"The path of the file to read"`
}

// WriteFileInput is the input for the write_file tool.
type WriteFileInput struct {
	Path    string `json:"path" description:"The path of the file to write"`
	Content string `json:"content" description:"The content to write to the file"`
}

// EditFileInput is the input for the edit_file tool.
type EditFileInput struct {
	Path    string `json:"path" description:"The path of the file to edit"`
	OldText string `json:"old_text" description:"Exact text to replace; must occur exactly once"`
	NewText string `json:"new_text" description:"Replacement text"`
}

// ListDirInput is the input for the list_dir tool.
type ListDirInput struct {
	Path string `json:"path" description:"The directory to list"`
}

// NewReadFileTool creates a tool for reading workspace files.
func NewReadFileTool(ws *workspace.Workspace) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"read_file",
		"Read the contents of a UTF-8 text file. Relative paths resolve under the workspace.",
		func(ctx context.Context, input ReadFileInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			content, err := readFile(ws, input.Path)
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			return fantasy.NewTextResponse(content), nil
		},
	)
}

// NewWriteFileTool creates a tool for writing workspace files.
func NewWriteFileTool(ws *workspace.Workspace) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"write_file",
		"Create a new file or replace the entire content of an existing file. Parent directories are created as needed.",
		func(ctx context.Context, input WriteFileInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			result, err := writeFile(ws, input.Path, input.Content)
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			return fantasy.NewTextResponse(result), nil
		},
	)
}

// NewEditFileTool creates a tool that replaces one exact text occurrence.
func NewEditFileTool(ws *workspace.Workspace) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"edit_file",
		"Replace one exact occurrence of old_text with new_text in a file.",
		func(ctx context.Context, input EditFileInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			result, err := editFile(ws, input.Path, input.OldText, input.NewText)
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			return fantasy.NewTextResponse(result), nil
		},
	)
}

// NewListDirTool creates a tool for listing directory entries.
func NewListDirTool(ws *workspace.Workspace) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"list_dir",
		"List entries in a directory, directories first.",
		func(ctx context.Context, input ListDirInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			result, err := listDir(ws, input.Path)
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			return fantasy.NewTextResponse(result), nil
		},
	)
}

func readFile(ws *workspace.Workspace, path string) (string, error) {
	target := ws.Resolve(path)
	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Errorf("file not found: %s", path)
		}
		return "", errors.Wrap(err, "reading file")
	}
	if info.IsDir() {
		return "", errors.Errorf("not a file: %s", path)
	}
	content, err := os.ReadFile(target)
	if err != nil {
		return "", errors.Wrap(err, "reading file")
	}
	return string(content), nil
}

func writeFile(ws *workspace.Workspace, path, content string) (string, error) {
	target := ws.Resolve(path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", errors.Wrap(err, "creating parent directory")
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return "", errors.Wrap(err, "writing file")
	}
	return fmt.Sprintf("Successfully wrote %d bytes to %s", len(content), target), nil
}

func editFile(ws *workspace.Workspace, path, oldText, newText string) (string, error) {
	target := ws.Resolve(path)
	data, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Errorf("file not found: %s", path)
		}
		return "", errors.Wrap(err, "reading file")
	}

	content := string(data)
	switch count := strings.Count(content, oldText); {
	case count == 0:
		return "", errors.New("old_text not found in file; make sure it matches exactly")
	case count > 1:
		return "", errors.Errorf("old_text appears %d times; provide more context to make it unique", count)
	}

	updated := strings.Replace(content, oldText, newText, 1)
	if err := os.WriteFile(target, []byte(updated), 0o644); err != nil {
		return "", errors.Wrap(err, "writing file")
	}
	return fmt.Sprintf("Successfully edited %s", target), nil
}

func listDir(ws *workspace.Workspace, path string) (string, error) {
	target := ws.Resolve(path)
	entries, err := os.ReadDir(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Errorf("directory not found: %s", path)
		}
		return "", errors.Wrap(err, "listing directory")
	}
	if len(entries) == 0 {
		return fmt.Sprintf("Directory %s is empty", target), nil
	}

	// Directories first, each group case-insensitively by name.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		kind := "[F]"
		if entry.IsDir() {
			kind = "[D]"
		}
		sb.WriteString(kind + " " + entry.Name())
	}
	return sb.String(), nil
}
