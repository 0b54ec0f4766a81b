// Package walker provides recursive-descent traversal over the generic
// document tree, plus collectors built on top of it.
//
// The walk is an explicit descent over the three node variants (mapping,
// sequence, scalar); handlers control descent with an Action:
//
//	walker.Walk(doc.Root(), walker.Handlers{
//		Entry: func(key string, value *document.Node, path string) walker.Action {
//			if key == "$ref" {
//				fmt.Println(path, value.Value())
//			}
//			return walker.Continue
//		},
//	})
//
// RefCollector gathers the component definition names referenced from a
// subtree via "#/components/<category>/<name>" pointers. Collection is
// one-level: it reports what the subtree itself references and does not
// follow the collected definitions' own references. Callers needing a
// transitive closure iterate collection to a fixed point (see the merger
// package).
package walker
