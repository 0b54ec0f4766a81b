// Package merger implements the merge engine: it imports paths present in
// a comprehensive OpenAPI document but missing from an official one, and
// pulls in the component definitions those paths depend on.
//
// Merging works at whole-path granularity with the official document always
// winning: a source path whose normalized pattern already exists in the
// target is skipped entirely, with no field-level reconciliation. Imported
// paths are normalized to the official naming conventions via the rename
// package before insertion, and the curated tag list from the configuration
// is appended to the target's tags.
//
// # Usage
//
//	m := merger.New(merger.DefaultConfig())
//	result, err := m.Merge(official, comprehensive)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range result.PathsAdded {
//		fmt.Println("added", p)
//	}
//
// Merge mutates the target document in place and reports everything it did
// (and deliberately did not do) in MergeResult, so callers can print
// human-readable progress without the engine knowing about output formats.
//
// # Component closure
//
// By default the engine collects references one level deep: only the
// imported path subtrees themselves are scanned, matching the behavior of
// the conversion this package descends from. A definition copied in this
// way can itself reference a definition that ends up missing; such gaps
// are reported in MergeResult.MissingFromSource rather than silently
// ignored. Set Config.TransitiveClosure to instead iterate collection to a
// fixed point across the copied definition bodies.
package merger
