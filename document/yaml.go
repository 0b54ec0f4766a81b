package document

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasreconcile/oaserrors"
)

// Parse builds a Document from YAML (or JSON, which YAML subsumes) bytes.
// Mapping key order from the source is preserved in the resulting tree.
// Duplicate mapping keys and non-mapping roots are reported as
// *oaserrors.ParseError.
func Parse(data []byte) (*Document, error) {
	node, err := ParseNode(data)
	if err != nil {
		return nil, err
	}
	return FromNode(node)
}

// ParseNode builds a single tree node from YAML bytes. Most callers want
// Parse; ParseNode is useful for fragments in tests and configuration.
func ParseNode(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid YAML", Cause: err}
	}
	return fromYAMLNode(&root)
}

// fromYAMLNode converts a yaml.Node subtree into the generic tree model.
func fromYAMLNode(yn *yaml.Node) (*Node, error) {
	switch yn.Kind {
	case yaml.DocumentNode:
		if len(yn.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(yn.Content[0])

	case yaml.AliasNode:
		return fromYAMLNode(yn.Alias)

	case yaml.MappingNode:
		out := NewMapping()
		for i := 0; i+1 < len(yn.Content); i += 2 {
			keyNode := yn.Content[i]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				return nil, &oaserrors.ParseError{
					Line:    keyNode.Line,
					Column:  keyNode.Column,
					Message: "mapping key must be a scalar",
					Cause:   err,
				}
			}
			if out.Has(key) {
				return nil, &oaserrors.ParseError{
					Line:    keyNode.Line,
					Column:  keyNode.Column,
					Message: fmt.Sprintf("duplicate mapping key %q", key),
				}
			}
			value, err := fromYAMLNode(yn.Content[i+1])
			if err != nil {
				return nil, err
			}
			out.Set(key, value)
		}
		return out, nil

	case yaml.SequenceNode:
		out := NewSequence()
		for _, item := range yn.Content {
			converted, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			out.Append(converted)
		}
		return out, nil

	case yaml.ScalarNode:
		return scalarFromYAML(yn)

	default:
		return nil, &oaserrors.ParseError{
			Line:    yn.Line,
			Column:  yn.Column,
			Message: fmt.Sprintf("unsupported YAML node kind %d", yn.Kind),
		}
	}
}

// scalarFromYAML converts a YAML scalar node using its resolved tag.
// Anything that is not null, bool, int, or float is kept as its string form.
func scalarFromYAML(yn *yaml.Node) (*Node, error) {
	switch yn.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := yn.Decode(&b); err != nil {
			return nil, scalarDecodeError(yn, err)
		}
		return NewScalar(b), nil
	case "!!int":
		var i int64
		if err := yn.Decode(&i); err != nil {
			return nil, scalarDecodeError(yn, err)
		}
		return NewScalar(i), nil
	case "!!float":
		var f float64
		if err := yn.Decode(&f); err != nil {
			return nil, scalarDecodeError(yn, err)
		}
		return NewScalar(f), nil
	default:
		return NewScalar(yn.Value), nil
	}
}

func scalarDecodeError(yn *yaml.Node, cause error) error {
	return &oaserrors.ParseError{
		Line:    yn.Line,
		Column:  yn.Column,
		Message: fmt.Sprintf("cannot decode %s scalar", yn.Tag),
		Cause:   cause,
	}
}

// MarshalNode serializes a tree node to block-style YAML with mapping keys
// in insertion order.
func MarshalNode(n *Node) ([]byte, error) {
	yn, err := toYAMLNode(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(yn)
}

// toYAMLNode converts a tree node back into a yaml.Node. Style is left at
// the zero value throughout so nested structures are never collapsed into
// flow style.
func toYAMLNode(n *Node) (*yaml.Node, error) {
	if n == nil {
		n = Null()
	}
	switch n.kind {
	case KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range n.keys {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
			valueNode, err := toYAMLNode(n.entries[key])
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, keyNode, valueNode)
		}
		return out, nil

	case KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.items {
			converted, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, converted)
		}
		return out, nil

	default:
		out := &yaml.Node{}
		if err := out.Encode(n.value); err != nil {
			return nil, fmt.Errorf("document: encoding scalar %v: %w", n.value, err)
		}
		return out, nil
	}
}
