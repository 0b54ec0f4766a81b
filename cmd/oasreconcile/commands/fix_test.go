package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasreconcile/fixer"
)

const fixFixture = `servers:
  - url: https://old.example.com
paths:
  /docs:
    post:
      operationId: createDoc
      responses:
        '200':
          description: Success
  /scim/v2/Users:
    get:
      operationId: listScimUsers
components:
  schemas:
    Access:
      type: string
      enum:
        - owners
        - null
`

func TestSetupFixFlags(t *testing.T) {
	fs, flags := SetupFixFlags()

	require.NoError(t, fs.Parse([]string{"-o", "out.yaml", "-fixes", "removed-path", "-q", "doc.yaml"}))
	assert.Equal(t, "out.yaml", flags.Output)
	assert.Equal(t, "removed-path", flags.Fixes)
	assert.True(t, flags.Quiet)
	assert.Equal(t, 1, fs.NArg())
}

func TestHandleFix(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.yaml")
	out := filepath.Join(dir, "fixed.yaml")
	require.NoError(t, os.WriteFile(doc, []byte(fixFixture), 0o600))

	require.NoError(t, HandleFix([]string{"-q", "-o", out, doc}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "createOrImportDoc")
	assert.Contains(t, string(data), "getgrist.com")
	assert.NotContains(t, string(data), "/scim/")
}

func TestHandleFixRestrictedTypes(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.yaml")
	out := filepath.Join(dir, "fixed.yaml")
	require.NoError(t, os.WriteFile(doc, []byte(fixFixture), 0o600))

	require.NoError(t, HandleFix([]string{"-q", "-o", out, "-fixes", "removed-path", doc}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "/scim/")
	// Other repairs did not run.
	assert.Contains(t, string(data), "createDoc")
	assert.Contains(t, string(data), "old.example.com")
}

func TestHandleFixErrors(t *testing.T) {
	doc := writeTempDoc(t, fixFixture)

	t.Run("wrong arg count", func(t *testing.T) {
		require.Error(t, HandleFix([]string{"-q"}))
	})

	t.Run("unknown fix type", func(t *testing.T) {
		err := HandleFix([]string{"-q", "-fixes", "nonsense", doc})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown fix type")
	})

	t.Run("missing source", func(t *testing.T) {
		err := HandleFix([]string{"-q", "-source", filepath.Join(t.TempDir(), "absent.yaml"), doc})
		require.Error(t, err)
	})
}

func TestParseFixList(t *testing.T) {
	fixes, err := parseFixList("removed-path, removed-tag")
	require.NoError(t, err)
	assert.Equal(t, []fixer.FixType{fixer.FixTypeRemovedPath, fixer.FixTypeRemovedTag}, fixes)

	fixes, err = parseFixList("operationid-backfill")
	require.NoError(t, err)
	assert.Equal(t, []fixer.FixType{fixer.FixTypeOperationIDBackfill}, fixes)

	_, err = parseFixList(",")
	require.Error(t, err)
}
