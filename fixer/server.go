package fixer

import (
	"fmt"

	"github.com/erraggy/oasreconcile/document"
)

// applyServerTemplate rewrites the first server entry's url and
// description to the canonical template. This is an unconditional
// overwrite: it runs whenever servers is non-empty, regardless of the
// current values.
func (f *Fixer) applyServerTemplate(doc *document.Document, result *FixResult) {
	if f.ServerTemplate == (ServerTemplate{}) {
		return
	}
	servers := doc.Servers()
	if !servers.IsSequence() || servers.Len() == 0 {
		return
	}
	first := servers.Items()[0]
	if !first.IsMapping() {
		return
	}

	before, _ := first.Get("url").StringValue()
	first.Set("url", document.NewScalar(f.ServerTemplate.URL))
	first.Set("description", document.NewScalar(f.ServerTemplate.Description))

	result.record(Fix{
		Type:        FixTypeServerTemplate,
		Path:        "servers[0]",
		Description: fmt.Sprintf("Set server url to '%s'", f.ServerTemplate.URL),
		Before:      before,
		After:       f.ServerTemplate.URL,
	})
}
