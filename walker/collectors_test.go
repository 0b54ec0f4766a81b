package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefCollector(t *testing.T) {
	node := parseNode(t, `
post:
  parameters:
    - $ref: '#/components/parameters/orgIdPathParam'
  requestBody:
    content:
      application/json:
        schema:
          $ref: '#/components/schemas/CreateDoc'
  responses:
    '200':
      content:
        application/json:
          schema:
            type: array
            items:
              $ref: '#/components/schemas/Doc'
    '404':
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/Doc'
`)

	schemas := NewRefCollector("schemas")
	schemas.Collect(node, "paths./docs")

	assert.Equal(t, map[string]bool{"CreateDoc": true, "Doc": true}, schemas.Names,
		"duplicates eliminated")
	assert.Len(t, schemas.Locations["Doc"], 2, "both locations recorded")
	require.NotEmpty(t, schemas.Locations["CreateDoc"])
	assert.Contains(t, schemas.Locations["CreateDoc"][0], "paths./docs.post.requestBody")

	params := CollectRefs(node, "parameters")
	assert.Equal(t, map[string]bool{"orgIdPathParam": true}, params)
}

func TestRefCollectorIgnoresForeignRefs(t *testing.T) {
	node := parseNode(t, `
a:
  $ref: './external.yaml#/components/schemas/User'
b:
  $ref: '#/definitions/OldStyle'
c:
  $ref: 42
d:
  $ref: '#/components/parameters/docIdPathParam'
`)

	assert.Empty(t, CollectRefs(node, "schemas"))
	assert.Equal(t, map[string]bool{"docIdPathParam": true}, CollectRefs(node, "parameters"))
}

func TestRefCollectorOneLevelOnly(t *testing.T) {
	// The walked subtree references Outer; Outer's body referencing Inner
	// is not part of the walked subtree and must not be collected.
	subtree := parseNode(t, `
schema:
  $ref: '#/components/schemas/Outer'
`)

	names := CollectRefs(subtree, "schemas")
	assert.Equal(t, map[string]bool{"Outer": true}, names)
}

func TestRefCollectorAccumulates(t *testing.T) {
	c := NewRefCollector("schemas")
	c.Collect(parseNode(t, "a:\n  $ref: '#/components/schemas/A'\n"), "first")
	c.Collect(parseNode(t, "b:\n  $ref: '#/components/schemas/B'\n"), "second")

	assert.Equal(t, map[string]bool{"A": true, "B": true}, c.Names)
	assert.Equal(t, []string{"first.a.$ref"}, c.Locations["A"])
}
