package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadDocument(t *testing.T) {
	path := writeTempDoc(t, "paths:\n  /orgs:\n    get: {}\n")

	doc, err := ReadDocument(path)
	require.NoError(t, err)
	assert.True(t, doc.Paths().Has("/orgs"))
}

func TestReadDocumentErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadDocument(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempDoc(t, "key: [unclosed")
		_, err := ReadDocument(path)
		require.Error(t, err)
	})
}

func TestWriteDocumentToFile(t *testing.T) {
	doc, err := ReadDocument(writeTempDoc(t, "paths: {}\n"))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteDocument(doc, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "paths:")
}

func TestValidateOutputPath(t *testing.T) {
	input := writeTempDoc(t, "paths: {}\n")

	t.Run("distinct output accepted", func(t *testing.T) {
		out := filepath.Join(filepath.Dir(input), "out.yaml")
		assert.NoError(t, ValidateOutputPath(out, []string{input}))
	})

	t.Run("overwriting an input rejected", func(t *testing.T) {
		err := ValidateOutputPath(input, []string{input})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "would overwrite")
	})

	t.Run("empty output accepted", func(t *testing.T) {
		assert.NoError(t, ValidateOutputPath("", []string{input}))
	})

	t.Run("stdin input ignored", func(t *testing.T) {
		assert.NoError(t, ValidateOutputPath(input, []string{StdinFilePath}))
	})
}
