package merger

import (
	"github.com/erraggy/oasreconcile/document"
	"github.com/erraggy/oasreconcile/internal/maputil"
	"github.com/erraggy/oasreconcile/walker"
)

// pendingDef is one referenced definition awaiting resolution.
type pendingDef struct {
	category string
	name     string
}

// copyComponents copies into target every definition referenced by the
// staged path subtrees that the target does not already hold, reading
// definition bodies from the source's components.
//
// With TransitiveClosure disabled this is a single scan of the staged
// subtrees; definitions referenced only from inside copied definition
// bodies stay unresolved and surface in MissingFromSource indirectly on a
// later run. With it enabled, every copied body joins the scan worklist
// until a fixed point is reached.
func (m *Merger) copyComponents(target, source *document.Document, staged []stagedPath, result *MergeResult) {
	seen := make(map[string]map[string]bool, len(m.config.Categories))
	for _, category := range m.config.Categories {
		seen[category] = make(map[string]bool)
	}

	worklist := make([]*document.Node, 0, len(staged))
	for _, s := range staged {
		worklist = append(worklist, s.item)
	}

	for len(worklist) > 0 {
		node := worklist[0]
		worklist = worklist[1:]

		var discovered []pendingDef
		for _, category := range m.config.Categories {
			names := walker.CollectRefs(node, category)
			// Sorted order keeps copy order deterministic across runs.
			for _, name := range maputil.SortedKeys(names) {
				if seen[category][name] {
					continue
				}
				seen[category][name] = true
				discovered = append(discovered, pendingDef{category: category, name: name})
			}
		}

		for _, def := range discovered {
			if copied := m.resolveDefinition(target, source, def, result); copied != nil && m.config.TransitiveClosure {
				worklist = append(worklist, copied)
			}
		}
	}
}

// resolveDefinition copies one referenced definition from source into
// target unless the target already holds it. A definition absent from the
// source as well is a known gap: recorded, logged, and skipped.
// It returns the copied body, or nil when nothing was copied.
func (m *Merger) resolveDefinition(target, source *document.Document, def pendingDef, result *MergeResult) *document.Node {
	if target.Components(def.category).Has(def.name) {
		return nil
	}

	body := source.Components(def.category).Get(def.name)
	if body == nil {
		result.MissingFromSource[def.category] = append(result.MissingFromSource[def.category], def.name)
		m.config.Logger.Warn("referenced definition missing from source",
			"category", def.category, "name", def.name)
		return nil
	}

	copied := body.Clone()
	target.EnsureComponents(def.category).Set(def.name, copied)
	result.ComponentsCopied[def.category] = append(result.ComponentsCopied[def.category], def.name)
	m.config.Logger.Debug("copied definition", "category", def.category, "name", def.name)
	return copied
}
