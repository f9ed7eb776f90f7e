package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRelative(t *testing.T) {
	root := t.TempDir()
	ws := New(root)
	assert.Equal(t, filepath.Join(root, "notes", "a.txt"), ws.Resolve("notes/a.txt"))
}

func TestResolveAbsolute(t *testing.T) {
	ws := New(t.TempDir())
	assert.Equal(t, "/etc/hosts", ws.Resolve("/etc/hosts"))
}

func TestResolveEmpty(t *testing.T) {
	root := t.TempDir()
	ws := New(root)
	assert.Equal(t, ws.Root(), ws.Resolve(""))
}

func TestResolveCleansDotSegments(t *testing.T) {
	root := t.TempDir()
	ws := New(root)
	assert.Equal(t, filepath.Join(root, "a"), ws.Resolve("./b/../a"))
}
