package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const officialFixture = `paths:
  /orgs:
    get:
      operationId: listOrgs
      responses:
        '200':
          description: Success
components:
  schemas: {}
`

const comprehensiveFixture = `paths:
  /api/orgs/{oid}/usage:
    get:
      operationId: orgUsage
      responses:
        '200':
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/OrgUsage'
components:
  schemas:
    OrgUsage:
      type: object
`

func TestSetupMergeFlags(t *testing.T) {
	fs, flags := SetupMergeFlags()

	require.NoError(t, fs.Parse([]string{"-o", "out.yaml", "-no-tags", "-transitive", "a.yaml", "b.yaml"}))
	assert.Equal(t, "out.yaml", flags.Output)
	assert.Equal(t, "/api", flags.PathPrefix)
	assert.True(t, flags.NoTags)
	assert.True(t, flags.Transitive)
	assert.False(t, flags.Quiet)
	assert.Equal(t, 2, fs.NArg())
}

func TestHandleMerge(t *testing.T) {
	dir := t.TempDir()
	official := filepath.Join(dir, "official.yaml")
	comprehensive := filepath.Join(dir, "comprehensive.yaml")
	out := filepath.Join(dir, "merged.yaml")
	require.NoError(t, os.WriteFile(official, []byte(officialFixture), 0o600))
	require.NoError(t, os.WriteFile(comprehensive, []byte(comprehensiveFixture), 0o600))

	err := HandleMerge([]string{"-q", "-o", out, "-no-tags", official, comprehensive})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/orgs/{orgId}/usage")
	assert.Contains(t, string(data), "OrgUsage")
}

func TestHandleMergeErrors(t *testing.T) {
	dir := t.TempDir()
	official := filepath.Join(dir, "official.yaml")
	require.NoError(t, os.WriteFile(official, []byte(officialFixture), 0o600))

	t.Run("wrong arg count", func(t *testing.T) {
		require.Error(t, HandleMerge([]string{"-q", official}))
	})

	t.Run("missing comprehensive", func(t *testing.T) {
		err := HandleMerge([]string{"-q", official, filepath.Join(dir, "absent.yaml")})
		require.Error(t, err)
	})

	t.Run("output overwrites input", func(t *testing.T) {
		comprehensive := filepath.Join(dir, "comprehensive.yaml")
		require.NoError(t, os.WriteFile(comprehensive, []byte(comprehensiveFixture), 0o600))
		err := HandleMerge([]string{"-q", "-o", official, official, comprehensive})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "would overwrite")
	})

	t.Run("both inputs stdin", func(t *testing.T) {
		err := HandleMerge([]string{"-q", StdinFilePath, StdinFilePath})
		require.Error(t, err)
	})

	t.Run("precondition violation", func(t *testing.T) {
		noPaths := filepath.Join(dir, "nopaths.yaml")
		require.NoError(t, os.WriteFile(noPaths, []byte("info:\n  title: x\n"), 0o600))
		comprehensive := filepath.Join(dir, "comprehensive.yaml")
		require.NoError(t, os.WriteFile(comprehensive, []byte(comprehensiveFixture), 0o600))
		err := HandleMerge([]string{"-q", noPaths, comprehensive})
		require.Error(t, err)
	})
}
