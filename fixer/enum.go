package fixer

import (
	"fmt"

	"github.com/erraggy/oasreconcile/document"
)

// fixNullEnums walks the entire document repairing every mapping whose
// enum sequence contains a null value: the null is removed and nullable is
// declared instead, unless the node already declares it. Each nested enum
// is repaired independently; recursion continues into all children whether
// or not the current node was modified.
func (f *Fixer) fixNullEnums(doc *document.Document, result *FixResult) {
	fixNullEnumsNode(doc.Root(), "", result)
}

func fixNullEnumsNode(node *document.Node, path string, result *FixResult) {
	if node == nil {
		return
	}
	switch node.Kind() {
	case document.KindMapping:
		repairEnum(node, path, result)
		for _, key := range node.Keys() {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			fixNullEnumsNode(node.Get(key), childPath, result)
		}
	case document.KindSequence:
		for i, item := range node.Items() {
			fixNullEnumsNode(item, fmt.Sprintf("%s[%d]", path, i), result)
		}
	}
}

// repairEnum applies the null-in-enum repair to a single mapping node.
func repairEnum(node *document.Node, path string, result *FixResult) {
	enum := node.Get("enum")
	if !enum.IsSequence() {
		return
	}

	kept := make([]*document.Node, 0, enum.Len())
	removed := 0
	for _, value := range enum.Items() {
		if value.IsNull() {
			removed++
			continue
		}
		kept = append(kept, value)
	}
	if removed == 0 {
		return
	}

	enum.SetItems(kept)
	declaredNullable := false
	if !node.Has("nullable") {
		node.Set("nullable", document.NewScalar(true))
		declaredNullable = true
	}

	description := "Removed null from enum"
	if declaredNullable {
		description += " and declared nullable"
	}
	result.record(Fix{
		Type:        FixTypeEnumNull,
		Path:        joinEnumPath(path),
		Description: description,
		Before:      removed,
		After:       len(kept),
	})
}

func joinEnumPath(path string) string {
	if path == "" {
		return "enum"
	}
	return path + ".enum"
}
