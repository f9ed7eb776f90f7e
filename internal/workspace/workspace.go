// Package workspace resolves tool-supplied paths against the configured
// workspace root.
package workspace

import (
	"os"
	"path/filepath"
	"strings"
)

// Workspace is a root directory that relative tool paths resolve under.
type Workspace struct {
	root string
}

// New creates a workspace rooted at the given directory. An empty root
// falls back to the current working directory.
func New(root string) *Workspace {
	if root == "" {
		root, _ = os.Getwd()
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Workspace{root: root}
}

// Root returns the absolute workspace root.
func (w *Workspace) Root() string {
	return w.root
}

// Resolve expands ~ and resolves a relative path under the workspace root.
func (w *Workspace) Resolve(path string) string {
	if path == "" {
		return w.root
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.root, path)
	}
	return filepath.Clean(path)
}
