package rename

import (
	"regexp"
	"strings"

	"github.com/erraggy/oasreconcile/document"
)

// paramToken matches one {name} placeholder in a path pattern.
var paramToken = regexp.MustCompile(`\{([^{}]+)\}`)

// NormalizePath rewrites a path pattern from the comprehensive convention
// to the official one: every segment equal to prefix (without its leading
// slash) is dropped, collapsing the slashes around it, and every
// {parameter} token is renamed via params. Tokens absent from the table
// pass through unchanged. Normalizing an already normalized path is a
// no-op.
func NormalizePath(path, prefix string, params Table) string {
	path = stripPrefixSegment(path, prefix)
	return paramToken.ReplaceAllStringFunc(path, func(token string) string {
		name := token[1 : len(token)-1]
		return "{" + params.Rename(name) + "}"
	})
}

// stripPrefixSegment removes path segments equal to the prefix segment
// ("/api" drops every literal "api" segment). An empty prefix disables
// stripping; a result with no segments left collapses to "/".
func stripPrefixSegment(path, prefix string) string {
	segment := strings.Trim(prefix, "/")
	if segment == "" || !strings.Contains(path, segment) {
		return path
	}
	parts := strings.Split(path, "/")
	kept := parts[:0]
	for _, part := range parts {
		if part == segment {
			continue
		}
		kept = append(kept, part)
	}
	out := strings.Join(kept, "/")
	if out == "" || out == "/" {
		return "/"
	}
	return out
}

// RenamePathItemParameters renames the name attribute of every parameter
// declaration found in the path item, covering both the item-level
// parameters sequence and each operation's own. The subtree is modified in
// place; the return value is the number of parameter entries renamed.
func RenamePathItemParameters(item *document.Node, params Table) int {
	return renameParameters(item, params)
}

func renameParameters(node *document.Node, params Table) int {
	if node == nil {
		return 0
	}
	renamed := 0
	switch node.Kind() {
	case document.KindMapping:
		for _, key := range node.Keys() {
			value := node.Get(key)
			if key == "parameters" && value.IsSequence() {
				renamed += renameParameterEntries(value, params)
			}
			renamed += renameParameters(value, params)
		}
	case document.KindSequence:
		for _, child := range node.Items() {
			renamed += renameParameters(child, params)
		}
	}
	return renamed
}

func renameParameterEntries(seq *document.Node, params Table) int {
	renamed := 0
	for _, entry := range seq.Items() {
		if !entry.IsMapping() {
			continue
		}
		name, ok := entry.Get("name").StringValue()
		if !ok {
			continue
		}
		if newName := params.Rename(name); newName != name {
			entry.Set("name", document.NewScalar(newName))
			renamed++
		}
	}
	return renamed
}
