package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseManifest(t *testing.T) {
	content := `---
name: pdf-processing
description: Extract text and tables from PDF files
license: Apache-2.0
---

# PDF Processing

Body content.`

	meta, body := ParseManifest(content)
	assert.Equal(t, "pdf-processing", meta.Name)
	assert.Equal(t, "Extract text and tables from PDF files", meta.Description)
	assert.Equal(t, "Apache-2.0", meta.Extra["license"])
	assert.Contains(t, body, "# PDF Processing")
	assert.NotContains(t, body, "description:")
}

func TestParseManifestNoHeader(t *testing.T) {
	content := "# Just a title\n\nSome content."

	meta, body := ParseManifest(content)
	assert.Empty(t, meta.Name)
	assert.Empty(t, meta.Description)
	assert.Equal(t, content, body)
}

func TestParseManifestUnclosedHeader(t *testing.T) {
	content := "---\nname: broken\nno closing marker"

	meta, body := ParseManifest(content)
	assert.Empty(t, meta.Name)
	assert.Equal(t, content, body)
}

func TestParseManifestMalformedYAML(t *testing.T) {
	content := "---\n\t{not yaml\n---\nbody"

	meta, body := ParseManifest(content)
	assert.Empty(t, meta.Description)
	assert.Equal(t, "body", body)
}

func TestParseManifestQuotedDescription(t *testing.T) {
	content := "---\ndescription: \"A quoted description\"\n---\nbody"

	meta, _ := ParseManifest(content)
	assert.Equal(t, "A quoted description", meta.Description)
}
