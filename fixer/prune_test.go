package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasreconcile/document"
)

func TestRemovePrefixedPaths(t *testing.T) {
	doc, err := document.Parse([]byte(`paths:
  /scim/v2/Users:
    get: {}
  /scim/v2/Groups:
    get: {}
  /scimitar:
    get: {}
  /docs:
    get: {}
`))
	require.NoError(t, err)

	result := &FixResult{}
	New().removePrefixedPaths(doc, result)

	// Prefixes match whole leading strings: /scimitar does not start
	// with "/scim/" and survives.
	assert.Equal(t, []string{"/scimitar", "/docs"}, doc.Paths().Keys())
	assert.Len(t, result.Fixes, 2)
}

func TestRemoveTagEntries(t *testing.T) {
	doc, err := document.Parse([]byte(`paths: {}
tags:
  - name: docs
    description: Documents
  - name: scim
    description: SCIM endpoints
  - name: orgs
`))
	require.NoError(t, err)

	result := &FixResult{}
	New().removeTagEntries(doc, result)

	require.Equal(t, 2, doc.Tags().Len())
	names := make([]string, 0, 2)
	for _, entry := range doc.Tags().Items() {
		name, _ := entry.Get("name").StringValue()
		names = append(names, name)
	}
	assert.Equal(t, []string{"docs", "orgs"}, names)

	require.Len(t, result.Fixes, 1)
	assert.Equal(t, "scim", result.Fixes[0].Before)
}

func TestRemoveTagEntriesNoTagsSection(t *testing.T) {
	doc, err := document.Parse([]byte("paths: {}\n"))
	require.NoError(t, err)

	result := &FixResult{}
	New().removeTagEntries(doc, result)
	assert.Empty(t, result.Fixes)
}
