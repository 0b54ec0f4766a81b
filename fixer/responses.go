package fixer

import (
	"fmt"

	"github.com/erraggy/oasreconcile/document"
	"github.com/erraggy/oasreconcile/internal/maputil"
)

// applyResponseOverrides overwrites the responses of each configured
// operation with the fixed status/description set, discarding any existing
// content. Operations absent from the document are skipped.
func (f *Fixer) applyResponseOverrides(doc *document.Document, result *FixResult) {
	paths := doc.Paths()
	if !paths.IsMapping() {
		return
	}

	for _, override := range f.ResponseOverrides {
		op := paths.Get(override.Path).Get(override.Method)
		if !op.IsMapping() {
			f.logger().Debug("response override target absent",
				"path", override.Path, "method", override.Method)
			continue
		}

		responses := document.NewMapping()
		for _, status := range maputil.SortedKeys(override.Responses) {
			entry := document.NewMapping()
			entry.Set("description", document.NewScalar(override.Responses[status]))
			responses.Set(status, entry)
		}
		op.Set("responses", responses)

		result.record(Fix{
			Type:        FixTypeForcedResponses,
			Path:        fmt.Sprintf("paths.%s.%s.responses", override.Path, override.Method),
			Description: fmt.Sprintf("Replaced responses of %s %s", override.Method, override.Path),
			After:       maputil.SortedKeys(override.Responses),
		})
	}
}
