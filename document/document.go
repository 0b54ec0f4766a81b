package document

import (
	"fmt"

	"github.com/erraggy/oasreconcile/oaserrors"
)

// Top-level section names recognized by the passes.
const (
	SectionPaths      = "paths"
	SectionComponents = "components"
	SectionTags       = "tags"
	SectionServers    = "servers"
)

// Component categories used by the merge engine.
const (
	CategorySchemas    = "schemas"
	CategoryParameters = "parameters"
)

// Document wraps a mapping root node and provides access to the OpenAPI
// top-level sections. All passes take and return Document values; none
// keeps hidden state between calls.
type Document struct {
	root *Node
}

// NewDocument returns an empty document with a mapping root.
func NewDocument() *Document {
	return &Document{root: NewMapping()}
}

// FromNode wraps an existing tree in a Document. The root must be a
// mapping.
func FromNode(root *Node) (*Document, error) {
	if root == nil || !root.IsMapping() {
		return nil, &oaserrors.ParseError{
			Message: fmt.Sprintf("document root must be a mapping, got %s", root.Kind()),
		}
	}
	return &Document{root: root}, nil
}

// Root returns the underlying root mapping node.
func (d *Document) Root() *Node {
	return d.root
}

// Paths returns the top-level paths mapping, or nil when absent.
func (d *Document) Paths() *Node {
	return d.section(SectionPaths)
}

// Components returns the mapping for one component category
// (e.g. "schemas"), or nil when the category or the components section is
// absent.
func (d *Document) Components(category string) *Node {
	components := d.section(SectionComponents)
	if components == nil || !components.IsMapping() {
		return nil
	}
	return components.Get(category)
}

// EnsureComponents returns the mapping for a component category, creating
// the components section and the category mapping as needed.
func (d *Document) EnsureComponents(category string) *Node {
	components := d.root.Get(SectionComponents)
	if components == nil || !components.IsMapping() {
		components = NewMapping()
		d.root.Set(SectionComponents, components)
	}
	categoryNode := components.Get(category)
	if categoryNode == nil || !categoryNode.IsMapping() {
		categoryNode = NewMapping()
		components.Set(category, categoryNode)
	}
	return categoryNode
}

// Tags returns the top-level tags sequence, or nil when absent.
func (d *Document) Tags() *Node {
	return d.section(SectionTags)
}

// EnsureTags returns the tags sequence, creating it when absent.
func (d *Document) EnsureTags() *Node {
	tags := d.root.Get(SectionTags)
	if tags == nil || !tags.IsSequence() {
		tags = NewSequence()
		d.root.Set(SectionTags, tags)
	}
	return tags
}

// Servers returns the top-level servers sequence, or nil when absent.
func (d *Document) Servers() *Node {
	return d.section(SectionServers)
}

func (d *Document) section(name string) *Node {
	if d == nil || d.root == nil {
		return nil
	}
	return d.root.Get(name)
}

// Validate checks the structural preconditions the merge engine depends
// on: a paths mapping and a components mapping must both be present. A
// violation is returned as *oaserrors.PreconditionError and is not
// recoverable.
func (d *Document) Validate() error {
	if d == nil || d.root == nil {
		return &oaserrors.PreconditionError{Message: "document has no root"}
	}
	paths := d.root.Get(SectionPaths)
	if paths == nil {
		return &oaserrors.PreconditionError{Section: SectionPaths, Message: "section is missing"}
	}
	if !paths.IsMapping() {
		return &oaserrors.PreconditionError{
			Section: SectionPaths,
			Message: fmt.Sprintf("expected a mapping, got %s", paths.Kind()),
		}
	}
	components := d.root.Get(SectionComponents)
	if components == nil {
		return &oaserrors.PreconditionError{Section: SectionComponents, Message: "section is missing"}
	}
	if !components.IsMapping() {
		return &oaserrors.PreconditionError{
			Section: SectionComponents,
			Message: fmt.Sprintf("expected a mapping, got %s", components.Kind()),
		}
	}
	return nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{root: d.root.Clone()}
}

// Marshal serializes the document to block-style YAML with mapping keys in
// their original insertion order.
func (d *Document) Marshal() ([]byte, error) {
	return MarshalNode(d.root)
}
