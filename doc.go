// Package oasreconcile provides tools for reconciling two OpenAPI documents
// that describe the same HTTP API into one consistent, self-contained document.
//
// The typical input pair is a hand-maintained "official" document and a more
// exhaustive "comprehensive" document written or generated independently.
// Reconciliation happens in two composable passes:
//
//   - merger: imports paths present in the comprehensive document but missing
//     from the official one, normalizing its naming conventions (path prefix
//     removal, parameter renames, $ref rewrites) and copying every component
//     definition the imported paths require.
//   - fixer: applies a set of targeted structural repairs to a single
//     document: server template correction, forced responses for a known
//     endpoint, removal of paths under disallowed prefixes, null-in-enum
//     repair, and operationId overrides.
//
// Both passes operate on the generic ordered document tree provided by the
// document package, so key order from the source files survives a round trip
// and output diffs stay reviewable. The passes touch disjoint classes of
// defects and may run in either order.
//
// # Quick Start
//
// Merge a comprehensive document into an official one:
//
//	official, _ := document.Parse(officialBytes)
//	comprehensive, _ := document.Parse(comprehensiveBytes)
//
//	m := merger.New(merger.DefaultConfig())
//	result, err := m.Merge(official, comprehensive)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Added %d path(s)\n", len(result.PathsAdded))
//
// Repair a merged document:
//
//	result, err := fixer.FixWithOptions(fixer.WithDocument(official))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Applied %d fix(es)\n", result.FixCount)
//
// # Packages
//
//   - document: the generic tree model (ordered mapping / sequence / scalar)
//     and its order-preserving YAML boundary
//   - walker: recursive-descent traversal and $ref closure collection
//   - rename: naming-convention normalization (paths, parameters, $refs)
//   - merger: the merge engine
//   - fixer: the fixup engine
//   - oaserrors: structured error types shared by all packages
//
// # Command-Line Interface
//
// The cmd/oasreconcile command wraps both passes:
//
//	# Merge missing paths and components
//	oasreconcile merge -o merged.yaml official.yaml comprehensive.yaml
//
//	# Apply structural repairs
//	oasreconcile fix -o fixed.yaml merged.yaml
//
// Install the CLI:
//
//	go install github.com/erraggy/oasreconcile/cmd/oasreconcile@latest
package oasreconcile
