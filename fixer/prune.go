package fixer

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasreconcile/document"
)

// removePrefixedPaths deletes every path whose pattern starts with one of
// the disallowed prefixes. Such endpoints reference definitions the
// document cannot resolve on its own, so they are excised rather than
// repaired.
func (f *Fixer) removePrefixedPaths(doc *document.Document, result *FixResult) {
	paths := doc.Paths()
	if !paths.IsMapping() {
		return
	}

	for _, pattern := range paths.Keys() {
		if !hasAnyPrefix(pattern, f.RemovePathPrefixes) {
			continue
		}
		paths.Delete(pattern)
		result.record(Fix{
			Type:        FixTypeRemovedPath,
			Path:        fmt.Sprintf("paths.%s", pattern),
			Description: fmt.Sprintf("Removed disallowed endpoint %s", pattern),
			Before:      pattern,
		})
	}
}

// removeTagEntries drops tag entries whose name is in the removal list.
func (f *Fixer) removeTagEntries(doc *document.Document, result *FixResult) {
	tags := doc.Tags()
	if !tags.IsSequence() || len(f.RemoveTags) == 0 {
		return
	}

	removeSet := make(map[string]bool, len(f.RemoveTags))
	for _, name := range f.RemoveTags {
		removeSet[name] = true
	}

	kept := make([]*document.Node, 0, tags.Len())
	for i, entry := range tags.Items() {
		name, _ := entry.Get("name").StringValue()
		if !removeSet[name] {
			kept = append(kept, entry)
			continue
		}
		result.record(Fix{
			Type:        FixTypeRemovedTag,
			Path:        fmt.Sprintf("tags[%d]", i),
			Description: fmt.Sprintf("Removed tag '%s'", name),
			Before:      name,
		})
	}
	tags.SetItems(kept)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
