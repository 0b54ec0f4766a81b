package walker

import "github.com/erraggy/oasreconcile/document"

// RefCollector traverses document subtrees to collect the component
// definition names they reference in one category.
//
// Collection is one-level: only references appearing in the walked subtree
// itself are recorded. References inside the bodies of the collected
// definitions are not followed; iterate collection to reach a fixed point
// when transitive closure is needed.
type RefCollector struct {
	// Category is the component category being collected (e.g. "schemas").
	Category string

	// Names is the set of collected definition names.
	Names map[string]bool

	// Locations maps each definition name to the dotted paths where a
	// reference to it appears, in visit order.
	Locations map[string][]string
}

// NewRefCollector creates a collector for one component category.
func NewRefCollector(category string) *RefCollector {
	return &RefCollector{
		Category:  category,
		Names:     make(map[string]bool),
		Locations: make(map[string][]string),
	}
}

// Collect walks the subtree and records every reference pointer targeting
// the collector's category. basePath seeds the recorded locations.
// Collect may be called multiple times to accumulate across subtrees.
func (c *RefCollector) Collect(node *document.Node, basePath string) {
	WalkFrom(node, basePath, Handlers{
		Entry: func(key string, value *document.Node, path string) Action {
			if key != RefKey {
				return Continue
			}
			ref, ok := value.StringValue()
			if !ok {
				return Continue
			}
			if name, match := RefName(ref, c.Category); match {
				c.Names[name] = true
				c.Locations[name] = append(c.Locations[name], path)
			}
			return Continue
		},
	})
}

// CollectRefs is a convenience wrapper returning the set of definition
// names in one category referenced from a subtree.
func CollectRefs(node *document.Node, category string) map[string]bool {
	c := NewRefCollector(category)
	c.Collect(node, "")
	return c.Names
}
