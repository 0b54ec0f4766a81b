package fixer_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oasreconcile/fixer"
)

// Example demonstrates applying the default repairs to a merged document.
func Example() {
	result, err := fixer.FixWithOptions(fixer.WithBytes([]byte(`
servers:
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
        - editors
        - null
`)))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Applied %d fix(es)\n", result.FixCount)
	for _, fix := range result.Fixes {
		fmt.Printf("  %s: %s\n", fix.Type, fix.Description)
	}

	// Output:
	// Applied 4 fix(es)
	//   server-template: Set server url to 'https://{subdomain}.getgrist.com/api'
	//   removed-path: Removed disallowed endpoint /scim/v2/Users
	//   enum-null-nullable: Removed null from enum and declared nullable
	//   operationid-override: Set operationId of post /docs to 'createOrImportDoc'
}
