package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/picobot-ai/picobot/internal/logger"
)

// ErrNotFound is returned by Read when no skill has the requested name.
var ErrNotFound = errors.New("skill not found")

// Registry discovers skills under a workspace root and a builtin root.
// It keeps no state between calls: every operation is a fresh scan of
// the filesystem, so concurrent calls are safe.
type Registry struct {
	workspaceDir string
	builtinDir   string
}

// NewRegistry creates a registry over the given roots. Either root may
// be empty or missing; those contribute no skills.
func NewRegistry(workspaceDir, builtinDir string) *Registry {
	return &Registry{
		workspaceDir: workspaceDir,
		builtinDir:   builtinDir,
	}
}

// Discover lists all skills: workspace entries first in scan order, then
// builtin entries whose names are not shadowed by a workspace skill.
// Missing roots and unreadable entries are skipped, never fatal.
func (r *Registry) Discover() []Record {
	seen := make(map[string]struct{})
	var records []Record

	roots := []struct {
		dir    string
		source Source
	}{
		{r.workspaceDir, SourceWorkspace},
		{r.builtinDir, SourceBuiltin},
	}

	for _, root := range roots {
		for _, rec := range scanRoot(root.dir, root.source) {
			if _, shadowed := seen[rec.Name]; shadowed {
				continue
			}
			seen[rec.Name] = struct{}{}
			records = append(records, rec)
		}
	}
	return records
}

// Read returns the exact content of a skill's SKILL.md, resolved with
// the same shadowing rule as Discover. It returns ErrNotFound for
// unknown names and a wrapped read error when the manifest disappears
// between listing and reading.
func (r *Registry) Read(name string) (string, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return "", errors.New("skill name cannot be empty")
	}

	for _, rec := range r.Discover() {
		if rec.Name != key {
			continue
		}
		content, err := os.ReadFile(rec.Path)
		if err != nil {
			return "", errors.Wrapf(err, "reading skill %q", key)
		}
		return string(content), nil
	}
	return "", errors.Wrapf(ErrNotFound, "%q", key)
}

// Summary renders the listing as an XML-like fragment for system prompt
// injection.
func (r *Registry) Summary() string {
	var sb strings.Builder
	sb.WriteString("<skills>\n")
	for _, rec := range r.Discover() {
		sb.WriteString("  <skill>\n")
		fmt.Fprintf(&sb, "    <name>%s</name>\n", xmlEscape(rec.Name))
		fmt.Fprintf(&sb, "    <description>%s</description>\n", xmlEscape(rec.Description))
		fmt.Fprintf(&sb, "    <source>%s</source>\n", rec.Source)
		fmt.Fprintf(&sb, "    <location>%s</location>\n", xmlEscape(rec.Path))
		sb.WriteString("  </skill>\n")
	}
	sb.WriteString("</skills>")
	return sb.String()
}

// scanRoot lists the skills directly under one root. The directory name
// is the authoritative skill identity; a frontmatter name never
// overrides it.
func scanRoot(dir string, source Source) []Record {
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.L.WithError(err).WithField("dir", dir).Warn("skipping unreadable skills root")
		}
		return nil
	}

	var records []Record
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest := filepath.Join(dir, entry.Name(), ManifestName)
		content, err := os.ReadFile(manifest)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.L.WithError(err).WithField("skill", entry.Name()).Warn("skipping unreadable skill")
			}
			continue
		}

		meta, _ := ParseManifest(string(content))
		records = append(records, Record{
			Name:        entry.Name(),
			Description: meta.Description,
			Source:      source,
			Path:        manifest,
		})
	}
	return records
}

func xmlEscape(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	return strings.ReplaceAll(text, ">", "&gt;")
}
