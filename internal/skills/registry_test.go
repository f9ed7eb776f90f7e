package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, name, description string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "---\ndescription: " + description + "\n---\n\n# " + name + "\n"
	path := filepath.Join(dir, ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverMissingRoots(t *testing.T) {
	reg := NewRegistry(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "also-nope"))
	assert.Empty(t, reg.Discover())
}

func TestDiscoverShadowing(t *testing.T) {
	workspace := t.TempDir()
	builtin := t.TempDir()

	writeSkill(t, workspace, "general", "A")
	writeSkill(t, builtin, "general", "B")
	writeSkill(t, builtin, "research", "C")

	reg := NewRegistry(workspace, builtin)
	records := reg.Discover()
	require.Len(t, records, 2)

	assert.Equal(t, "general", records[0].Name)
	assert.Equal(t, "A", records[0].Description)
	assert.Equal(t, SourceWorkspace, records[0].Source)

	assert.Equal(t, "research", records[1].Name)
	assert.Equal(t, "C", records[1].Description)
	assert.Equal(t, SourceBuiltin, records[1].Source)
}

func TestDiscoverWorkspaceEntriesFirst(t *testing.T) {
	workspace := t.TempDir()
	builtin := t.TempDir()

	writeSkill(t, workspace, "zeta", "workspace skill")
	writeSkill(t, builtin, "alpha", "builtin skill")

	reg := NewRegistry(workspace, builtin)
	records := reg.Discover()
	require.Len(t, records, 2)
	assert.Equal(t, SourceWorkspace, records[0].Source)
	assert.Equal(t, SourceBuiltin, records[1].Source)
}

func TestDiscoverHeaderlessManifest(t *testing.T) {
	workspace := t.TempDir()
	dir := filepath.Join(workspace, "plain")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("# no header here\n"), 0o644))

	reg := NewRegistry(workspace, "")
	records := reg.Discover()
	require.Len(t, records, 1)
	assert.Equal(t, "plain", records[0].Name)
	assert.Equal(t, "", records[0].Description)
}

func TestDiscoverSkipsNonSkills(t *testing.T) {
	workspace := t.TempDir()
	// Plain file and manifest-less directory are not skills.
	require.NoError(t, os.WriteFile(filepath.Join(workspace, "README.md"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(workspace, "empty"), 0o755))
	writeSkill(t, workspace, "real", "yes")

	reg := NewRegistry(workspace, "")
	records := reg.Discover()
	require.Len(t, records, 1)
	assert.Equal(t, "real", records[0].Name)
}

func TestReadRoundTrip(t *testing.T) {
	workspace := t.TempDir()
	path := writeSkill(t, workspace, "general", "A")
	want, err := os.ReadFile(path)
	require.NoError(t, err)

	reg := NewRegistry(workspace, "")
	got, err := reg.Read("general")
	require.NoError(t, err)
	assert.Equal(t, string(want), got)
}

func TestReadShadowed(t *testing.T) {
	workspace := t.TempDir()
	builtin := t.TempDir()
	writeSkill(t, workspace, "general", "A")
	writeSkill(t, builtin, "general", "B")

	reg := NewRegistry(workspace, builtin)
	got, err := reg.Read("general")
	require.NoError(t, err)
	assert.Contains(t, got, "description: A")
}

func TestReadNotFound(t *testing.T) {
	reg := NewRegistry(t.TempDir(), t.TempDir())
	_, err := reg.Read("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadEmptyName(t *testing.T) {
	reg := NewRegistry(t.TempDir(), "")
	_, err := reg.Read("   ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSummary(t *testing.T) {
	workspace := t.TempDir()
	writeSkill(t, workspace, "general", "Helps with <everything>")

	reg := NewRegistry(workspace, "")
	summary := reg.Summary()
	assert.Contains(t, summary, "<name>general</name>")
	assert.Contains(t, summary, "&lt;everything&gt;")
	assert.Contains(t, summary, "<source>workspace</source>")
}

func TestSummaryEmpty(t *testing.T) {
	reg := NewRegistry("", "")
	assert.Equal(t, "<skills>\n</skills>", reg.Summary())
}
