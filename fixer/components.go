package fixer

import (
	"fmt"

	"github.com/erraggy/oasreconcile/document"
	"github.com/erraggy/oasreconcile/internal/maputil"
	"github.com/erraggy/oasreconcile/walker"
)

// copyMissingComponents backfills component definitions that the
// document's paths reference but its components section lacks, copying the
// bodies from the configured source document. This covers endpoints that
// already existed before a merge and therefore were never scanned by the
// merge engine's closure step.
//
// Collection is one-level over the whole paths section; a name found in
// neither the document nor the source is logged and skipped, matching the
// merge engine's known-gap policy.
func (f *Fixer) copyMissingComponents(doc *document.Document, result *FixResult) {
	if f.ComponentSource == nil {
		return
	}
	paths := doc.Paths()
	if !paths.IsMapping() {
		return
	}

	categories := f.ComponentCategories
	if len(categories) == 0 {
		categories = []string{document.CategorySchemas, document.CategoryParameters}
	}

	for _, category := range categories {
		names := walker.CollectRefs(paths, category)
		for _, name := range maputil.SortedKeys(names) {
			if doc.Components(category).Has(name) {
				continue
			}
			body := f.ComponentSource.Components(category).Get(name)
			if body == nil {
				f.logger().Warn("referenced definition missing from component source",
					"category", category, "name", name)
				continue
			}
			doc.EnsureComponents(category).Set(name, body.Clone())
			result.record(Fix{
				Type:        FixTypeCopiedComponent,
				Path:        fmt.Sprintf("components.%s.%s", category, name),
				Description: fmt.Sprintf("Copied missing %s definition '%s'", category, name),
				After:       name,
			})
		}
	}
}
