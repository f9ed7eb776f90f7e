// Package skills discovers skill directories and serves their SKILL.md
// manifests. A skill is a directory holding a SKILL.md with an optional
// YAML frontmatter header and a free-form body. Skills come from two
// roots: the user workspace and the bundled builtin set, with workspace
// skills shadowing builtin ones of the same name.
package skills

// Source identifies which root produced a skill.
type Source string

const (
	SourceWorkspace Source = "workspace"
	SourceBuiltin   Source = "builtin"
)

// Record is the listing entry for one discovered skill.
type Record struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      Source `json:"source"`
	Path        string `json:"location"`
}

// Metadata is the recognized portion of a SKILL.md frontmatter header.
// Keys other than name and description are kept in Extra but not
// interpreted.
type Metadata struct {
	Name        string
	Description string
	Extra       map[string]any
}
