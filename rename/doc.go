// Package rename rewrites naming conventions when importing paths from a
// comprehensive OpenAPI document into an official one.
//
// Three rewrites cooperate, all driven by the same injectable tables:
//
//   - NormalizePath strips a literal prefix segment ("/api") from a path
//     pattern and renames its {parameter} tokens.
//   - RenamePathItemParameters renames the name attribute of parameter
//     declarations so they agree with the rewritten tokens.
//   - Rewriter renames the definition-name segment of $ref pointers in one
//     component category.
//
// The tables are data, not code: DefaultParameters and DefaultParameterRefs
// carry the convention pair this tool was built for, and callers may supply
// their own for differently named document pairs. Names absent from a table
// pass through unchanged; identity entries are valid and mark names that
// are deliberately identical in both conventions.
package rename
