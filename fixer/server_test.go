package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasreconcile/document"
)

func TestApplyServerTemplate(t *testing.T) {
	doc, err := document.Parse([]byte(`paths: {}
servers:
  - url: https://old.example.com
    description: Old
    variables:
      region:
        default: us
  - url: https://second.example.com
`))
	require.NoError(t, err)

	result := &FixResult{}
	New().applyServerTemplate(doc, result)

	first := doc.Servers().Items()[0]
	url, _ := first.Get("url").StringValue()
	assert.Equal(t, "https://{subdomain}.getgrist.com/api", url)

	// Keys beyond url and description are untouched, as is every entry
	// after the first.
	assert.True(t, first.Has("variables"))
	second, _ := doc.Servers().Items()[1].Get("url").StringValue()
	assert.Equal(t, "https://second.example.com", second)

	require.Len(t, result.Fixes, 1)
	assert.Equal(t, "https://old.example.com", result.Fixes[0].Before)
}

func TestApplyServerTemplateNoServers(t *testing.T) {
	doc, err := document.Parse([]byte("paths: {}\n"))
	require.NoError(t, err)

	result := &FixResult{}
	New().applyServerTemplate(doc, result)
	assert.Empty(t, result.Fixes)
}

func TestApplyServerTemplateDisabledByZeroValue(t *testing.T) {
	doc, err := document.Parse([]byte("paths: {}\nservers:\n  - url: https://keep.example.com\n"))
	require.NoError(t, err)

	f := New()
	f.ServerTemplate = ServerTemplate{}
	result := &FixResult{}
	f.applyServerTemplate(doc, result)

	url, _ := doc.Servers().Items()[0].Get("url").StringValue()
	assert.Equal(t, "https://keep.example.com", url)
	assert.Empty(t, result.Fixes)
}
