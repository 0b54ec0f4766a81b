package rename

import (
	"github.com/erraggy/oasreconcile/document"
	"github.com/erraggy/oasreconcile/walker"
)

// Rewriter renames the definition-name segment of reference pointers in
// one component category. Pointer syntax and category are never touched;
// only the trailing name segment changes, and only for names present in
// the table.
type Rewriter struct {
	category string
	table    Table
}

// NewRewriter creates a rewriter for one component category.
func NewRewriter(category string, table Table) *Rewriter {
	return &Rewriter{category: category, table: table}
}

// Rewrite walks the subtree and rewrites matching reference pointers in
// place. It returns the number of pointers rewritten.
func (r *Rewriter) Rewrite(node *document.Node) int {
	rewritten := 0
	rewriteRefs(node, func(ref string) (string, bool) {
		name, ok := walker.RefName(ref, r.category)
		if !ok || !r.table.Has(name) {
			return "", false
		}
		newName := r.table.Rename(name)
		if newName == name {
			return "", false
		}
		rewritten++
		return walker.MakeRef(r.category, newName), true
	})
	return rewritten
}

// rewriteRefs descends through mappings and sequences unconditionally,
// replacing $ref scalar values for which replace returns a new pointer.
func rewriteRefs(node *document.Node, replace func(ref string) (string, bool)) {
	if node == nil {
		return
	}
	switch node.Kind() {
	case document.KindMapping:
		for _, key := range node.Keys() {
			value := node.Get(key)
			if key == walker.RefKey {
				if ref, ok := value.StringValue(); ok {
					if newRef, changed := replace(ref); changed {
						node.Set(key, document.NewScalar(newRef))
						continue
					}
				}
			}
			rewriteRefs(value, replace)
		}
	case document.KindSequence:
		for _, item := range node.Items() {
			rewriteRefs(item, replace)
		}
	}
}
