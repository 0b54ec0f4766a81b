// Package fixer applies targeted structural repairs to a single OpenAPI
// document.
//
// The repairs are independent, idempotent, and commute with each other:
// none reads state another writes, so they may run in any order. Each
// repair either rewrites a fixed location unconditionally (an idempotent
// overwrite, never a conditional patch) or walks the whole tree repairing
// every occurrence of a defect:
//
//   - server template: rewrite the first server entry's url and description
//     to the canonical template
//   - forced responses: overwrite the responses of a known endpoint whose
//     responses are missing or wrong
//   - path removal: delete every path under a disallowed prefix, and the
//     tag entries that describe those paths
//   - enum null repair: remove null from enum value sequences and declare
//     nullable instead
//   - operationId override: overwrite a known duplicate operationId with
//     its corrected value
//
// Two further repairs are available beyond that core set: copying
// component definitions that existing endpoints reference but the document
// lacks (from a configured source document), and backfilling operationIds
// derived from method and path for operations that have none.
//
// # Quick Start
//
// Fix a document using functional options:
//
//	result, err := fixer.FixWithOptions(
//		fixer.WithBytes(data),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Applied %d fix(es)\n", result.FixCount)
//
// Or use a reusable Fixer instance with custom targets:
//
//	f := fixer.New()
//	f.RemovePathPrefixes = []string{"/internal/"}
//	result, _ := f.Fix(doc)
//
// The fix targets are configuration data, not code; New returns the
// defaults for the document pair this tool was built for.
package fixer
