package skills

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the fixed file name that marks a directory as a skill.
const ManifestName = "SKILL.md"

const headerMarker = "---"

// ParseManifest splits a SKILL.md into its frontmatter metadata and body.
// Content without a leading marker pair is treated as headerless: empty
// metadata and the whole content as body. A malformed header is never an
// error; the skill simply loses its description.
func ParseManifest(content string) (Metadata, string) {
	if !strings.HasPrefix(content, headerMarker) {
		return Metadata{}, content
	}

	lines := strings.Split(content, "\n")
	endIdx := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == headerMarker {
			endIdx = i
			break
		}
	}
	if endIdx == -1 {
		// Unclosed header, treat as headerless.
		return Metadata{}, content
	}

	header := strings.Join(lines[1:endIdx], "\n")
	body := strings.TrimPrefix(strings.Join(lines[endIdx+1:], "\n"), "\n")

	fields := map[string]any{}
	if err := yaml.Unmarshal([]byte(header), &fields); err != nil {
		return Metadata{}, body
	}

	meta := Metadata{Extra: map[string]any{}}
	for key, value := range fields {
		switch key {
		case "name":
			meta.Name, _ = value.(string)
		case "description":
			meta.Description, _ = value.(string)
		default:
			meta.Extra[key] = value
		}
	}
	return meta, body
}
