// Package document provides the generic tree model that all oasreconcile
// passes operate on, together with its order-preserving YAML boundary.
//
// Every node in the tree is exactly one of three variants:
//
//   - mapping: string keys to child nodes, keys unique, insertion order
//     preserved so output diffs against the source stay reviewable
//   - sequence: an ordered list of child nodes
//   - scalar: string, int, float64, bool, or null
//
// No pass may assume a richer type system than this. Traversal is explicit
// recursive descent (see the walker package) rather than reflection, which
// keeps the contract of which node types are visited testable in isolation.
//
// Document wraps a mapping root and adds accessors for the OpenAPI top-level
// sections (paths, components, tags, servers) plus the structural
// precondition checks the merge engine requires.
//
// # Parsing and Serialization
//
//	doc, err := document.Parse(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := doc.Marshal()
//
// Marshal emits block-style YAML with mapping keys in their original
// insertion order; parsing and re-serializing an untouched document yields
// semantically identical output.
package document
