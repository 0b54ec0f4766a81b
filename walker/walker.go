package walker

import (
	"fmt"

	"github.com/erraggy/oasreconcile/document"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// NodeHandler is called for every node before its children are visited.
// The path is a dotted location like "paths./docs.post.responses".
type NodeHandler func(node *document.Node, path string) Action

// EntryHandler is called for each mapping entry before descending into its
// value. Returning SkipChildren skips the value's subtree.
type EntryHandler func(key string, value *document.Node, path string) Action

// Handlers bundles the callbacks for a walk. Nil handlers are skipped.
type Handlers struct {
	// Node is invoked for every node (mapping, sequence, and scalar).
	Node NodeHandler
	// Entry is invoked for every mapping entry.
	Entry EntryHandler
}

// Walk traverses the subtree rooted at node in depth-first order, mapping
// entries in insertion order and sequence items in positional order.
// It returns true if the walk ran to completion, false if a handler
// returned Stop.
func Walk(node *document.Node, h Handlers) bool {
	return walk(node, "", h) != Stop
}

// WalkFrom behaves like Walk but seeds the reported paths with basePath,
// which is useful when walking a subtree of a larger document.
func WalkFrom(node *document.Node, basePath string, h Handlers) bool {
	return walk(node, basePath, h) != Stop
}

func walk(node *document.Node, path string, h Handlers) Action {
	if node == nil {
		return Continue
	}

	if h.Node != nil {
		switch action := h.Node(node, path); action {
		case SkipChildren:
			return Continue
		case Stop:
			return Stop
		}
	}

	switch node.Kind() {
	case document.KindMapping:
		for _, key := range node.Keys() {
			value := node.Get(key)
			childPath := joinPath(path, key)
			if h.Entry != nil {
				switch action := h.Entry(key, value, childPath); action {
				case SkipChildren:
					continue
				case Stop:
					return Stop
				}
			}
			if walk(value, childPath, h) == Stop {
				return Stop
			}
		}
	case document.KindSequence:
		for i, item := range node.Items() {
			if walk(item, fmt.Sprintf("%s[%d]", path, i), h) == Stop {
				return Stop
			}
		}
	}

	return Continue
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}
