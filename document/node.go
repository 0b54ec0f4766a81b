package document

import "fmt"

// Kind identifies the variant of a Node.
type Kind int

const (
	// KindScalar is a leaf value: string, int, float64, bool, or null.
	KindScalar Kind = iota
	// KindMapping maps string keys to child nodes, preserving insertion order.
	KindMapping
	// KindSequence is an ordered list of child nodes.
	KindSequence
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a single node in the generic document tree. A node is exactly one
// of a mapping, a sequence, or a scalar; the zero value is a null scalar.
type Node struct {
	kind Kind

	// scalar payload, valid when kind == KindScalar
	value any

	// mapping payload, valid when kind == KindMapping
	keys    []string
	entries map[string]*Node

	// sequence payload, valid when kind == KindSequence
	items []*Node
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{kind: KindMapping, entries: make(map[string]*Node)}
}

// NewSequence returns a sequence node containing the given items in order.
func NewSequence(items ...*Node) *Node {
	n := &Node{kind: KindSequence}
	n.items = append(n.items, items...)
	return n
}

// NewScalar returns a scalar node holding v. Valid scalar payloads are
// string, int, int64, float64, bool, and nil; int64 is narrowed to int.
func NewScalar(v any) *Node {
	if i, ok := v.(int64); ok {
		v = int(i)
	}
	return &Node{kind: KindScalar, value: v}
}

// Null returns a null scalar node.
func Null() *Node {
	return &Node{kind: KindScalar}
}

// Kind returns the variant of the node. A nil node reports KindScalar,
// matching its treatment as a null scalar elsewhere.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindScalar
	}
	return n.kind
}

// IsMapping reports whether the node is a mapping.
func (n *Node) IsMapping() bool { return n != nil && n.kind == KindMapping }

// IsSequence reports whether the node is a sequence.
func (n *Node) IsSequence() bool { return n != nil && n.kind == KindSequence }

// IsScalar reports whether the node is a scalar.
func (n *Node) IsScalar() bool { return n != nil && n.kind == KindScalar }

// IsNull reports whether the node is a null scalar.
func (n *Node) IsNull() bool { return n != nil && n.kind == KindScalar && n.value == nil }

// Value returns the scalar payload. It is nil for null scalars and for
// non-scalar nodes.
func (n *Node) Value() any {
	if n == nil || n.kind != KindScalar {
		return nil
	}
	return n.value
}

// StringValue returns the scalar payload as a string. The second return
// value is false when the node is not a string scalar.
func (n *Node) StringValue() (string, bool) {
	if n == nil || n.kind != KindScalar {
		return "", false
	}
	s, ok := n.value.(string)
	return s, ok
}

// Keys returns the mapping keys in insertion order. It returns nil for
// non-mapping nodes. The returned slice is a copy.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindMapping {
		return nil
	}
	keys := make([]string, len(n.keys))
	copy(keys, n.keys)
	return keys
}

// Get returns the child node for key, or nil if the node is not a mapping
// or the key is absent.
func (n *Node) Get(key string) *Node {
	if n == nil || n.kind != KindMapping {
		return nil
	}
	return n.entries[key]
}

// Has reports whether the mapping contains key.
func (n *Node) Has(key string) bool {
	if n == nil || n.kind != KindMapping {
		return false
	}
	_, ok := n.entries[key]
	return ok
}

// Set stores value under key. New keys are appended after existing ones;
// setting an existing key replaces the value but keeps its position.
// Set panics when called on a non-mapping node: writes to the wrong variant
// indicate a programming error, not a data error.
func (n *Node) Set(key string, value *Node) {
	if n == nil || n.kind != KindMapping {
		panic(fmt.Sprintf("document: Set on %s node", n.Kind()))
	}
	if _, exists := n.entries[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.entries[key] = value
}

// Delete removes key from the mapping, preserving the order of the
// remaining keys. It reports whether the key was present.
func (n *Node) Delete(key string) bool {
	if n == nil || n.kind != KindMapping {
		return false
	}
	if _, exists := n.entries[key]; !exists {
		return false
	}
	delete(n.entries, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of mapping entries or sequence items. It returns
// 0 for scalar nodes.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case KindMapping:
		return len(n.keys)
	case KindSequence:
		return len(n.items)
	default:
		return 0
	}
}

// Items returns the sequence items in order. It returns nil for
// non-sequence nodes. The returned slice is shared with the node; callers
// that need an independent copy should Clone first.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != KindSequence {
		return nil
	}
	return n.items
}

// Append adds items to the end of the sequence. Like Set, it panics when
// called on a non-sequence node.
func (n *Node) Append(items ...*Node) {
	if n == nil || n.kind != KindSequence {
		panic(fmt.Sprintf("document: Append on %s node", n.Kind()))
	}
	n.items = append(n.items, items...)
}

// SetItems replaces the sequence contents.
func (n *Node) SetItems(items []*Node) {
	if n == nil || n.kind != KindSequence {
		panic(fmt.Sprintf("document: SetItems on %s node", n.Kind()))
	}
	n.items = items
}

// Clone returns a deep copy of the node. Cloning a nil node returns nil.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindMapping:
		out := NewMapping()
		for _, key := range n.keys {
			out.Set(key, n.entries[key].Clone())
		}
		return out
	case KindSequence:
		out := NewSequence()
		for _, item := range n.items {
			out.Append(item.Clone())
		}
		return out
	default:
		return &Node{kind: KindScalar, value: n.value}
	}
}

// Equal reports whether two nodes are deeply equal: same variant, same
// scalar payloads, same keys in the same order for mappings, and same items
// in the same order for sequences.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindMapping:
		if len(n.keys) != len(other.keys) {
			return false
		}
		for i, key := range n.keys {
			if other.keys[i] != key {
				return false
			}
			if !n.entries[key].Equal(other.entries[key]) {
				return false
			}
		}
		return true
	case KindSequence:
		if len(n.items) != len(other.items) {
			return false
		}
		for i, item := range n.items {
			if !item.Equal(other.items[i]) {
				return false
			}
		}
		return true
	default:
		return scalarEqual(n.value, other.value)
	}
}

// scalarEqual compares scalar payloads, treating int and float64 values
// that represent the same number as distinct (YAML distinguishes them).
func scalarEqual(a, b any) bool {
	return a == b
}
