package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasreconcile/document"
)

func TestCopyMissingComponents(t *testing.T) {
	doc, err := document.Parse([]byte(`paths:
  /orgs:
    get:
      responses:
        '200':
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Org'
  /ghosts:
    get:
      responses:
        '200':
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Ghost'
components:
  schemas:
    Org:
      type: object
`))
	require.NoError(t, err)

	source, err := document.Parse([]byte(`paths: {}
components:
  schemas:
    Org:
      type: string
`))
	require.NoError(t, err)

	f := New()
	f.ComponentSource = source
	result := &FixResult{}
	f.copyMissingComponents(doc, result)

	// Org already exists and is not replaced by the source's variant.
	org := doc.Components(document.CategorySchemas).Get("Org")
	v, _ := org.Get("type").StringValue()
	assert.Equal(t, "object", v)

	// Ghost resolves nowhere: logged and skipped.
	assert.False(t, doc.Components(document.CategorySchemas).Has("Ghost"))
	assert.Empty(t, result.Fixes)
}

func TestCopyMissingComponentsBackfills(t *testing.T) {
	doc, err := document.Parse([]byte(`paths:
  /workspaces/{wid}:
    get:
      parameters:
        - $ref: '#/components/parameters/WorkspaceId'
      responses:
        '200':
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Workspace'
components: {}
`))
	require.NoError(t, err)

	source, err := document.Parse([]byte(`paths: {}
components:
  schemas:
    Workspace:
      type: object
      properties:
        id:
          type: integer
  parameters:
    WorkspaceId:
      name: wid
      in: path
`))
	require.NoError(t, err)

	f := New()
	f.ComponentSource = source
	result := &FixResult{}
	f.copyMissingComponents(doc, result)

	require.True(t, doc.Components(document.CategorySchemas).Has("Workspace"))
	require.True(t, doc.Components(document.CategoryParameters).Has("WorkspaceId"))
	assert.Len(t, result.Fixes, 2)

	// Copies are independent of the source document.
	doc.Components(document.CategorySchemas).Get("Workspace").Set("x-copied", document.NewScalar(true))
	assert.False(t, source.Components(document.CategorySchemas).Get("Workspace").Has("x-copied"))
}

func TestCopyMissingComponentsWithoutSource(t *testing.T) {
	doc, err := document.Parse([]byte(`paths:
  /orgs:
    get:
      responses:
        '200':
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Org'
`))
	require.NoError(t, err)

	result := &FixResult{}
	New().copyMissingComponents(doc, result)
	assert.Empty(t, result.Fixes)
}
