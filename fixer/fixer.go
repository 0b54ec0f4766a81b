package fixer

import (
	"slices"

	"github.com/erraggy/oasreconcile/document"
	"github.com/erraggy/oasreconcile/oaserrors"
)

// FixType identifies the type of fix applied.
type FixType string

const (
	// FixTypeServerTemplate indicates the first server entry was rewritten
	// to the canonical template.
	FixTypeServerTemplate FixType = "server-template"
	// FixTypeForcedResponses indicates an operation's responses were
	// overwritten with a known-good set.
	FixTypeForcedResponses FixType = "forced-responses"
	// FixTypeRemovedPath indicates a path under a disallowed prefix was removed.
	FixTypeRemovedPath FixType = "removed-path"
	// FixTypeRemovedTag indicates a tag entry was removed.
	FixTypeRemovedTag FixType = "removed-tag"
	// FixTypeEnumNull indicates a null was removed from an enum and
	// nullable declared instead.
	FixTypeEnumNull FixType = "enum-null-nullable"
	// FixTypeOperationIDOverride indicates a known operationId was
	// overwritten with its corrected value.
	FixTypeOperationIDOverride FixType = "operationid-override"
	// FixTypeCopiedComponent indicates a component definition referenced by
	// existing endpoints was copied from the component source document.
	FixTypeCopiedComponent FixType = "copied-missing-component"
	// FixTypeOperationIDBackfill indicates an operation without an
	// operationId received one derived from its method and path.
	FixTypeOperationIDBackfill FixType = "operationid-backfill"
)

// DefaultFixTypes returns the fix types enabled when Fixer.EnabledFixes is
// nil. FixTypeOperationIDBackfill is never implied; request it explicitly:
//
//	f.EnabledFixes = append(fixer.DefaultFixTypes(), fixer.FixTypeOperationIDBackfill)
func DefaultFixTypes() []FixType {
	return []FixType{
		FixTypeServerTemplate,
		FixTypeForcedResponses,
		FixTypeRemovedPath,
		FixTypeRemovedTag,
		FixTypeEnumNull,
		FixTypeOperationIDOverride,
		FixTypeCopiedComponent,
	}
}

// Fix represents a single fix applied to the document.
type Fix struct {
	// Type identifies the category of fix
	Type FixType
	// Path is the dotted path to the fixed location (e.g. "paths./docs.post.operationId")
	Path string
	// Description is a human-readable description of the fix
	Description string
	// Before is the state before the fix (nil if adding a new element)
	Before any
	// After is the value that was set (nil if removing an element)
	After any
}

// FixResult contains the results of a fix operation.
type FixResult struct {
	// Document is the fixed document (the same instance passed in,
	// mutated in place).
	Document *document.Document
	// Fixes contains all fixes applied
	Fixes []Fix
	// FixCount is the total number of fixes applied
	FixCount int
	// Success is true if fixing completed without errors
	Success bool
}

// HasFixes returns true if any fixes were applied.
func (r *FixResult) HasFixes() bool {
	return r.FixCount > 0
}

// record appends one applied fix.
func (r *FixResult) record(f Fix) {
	r.Fixes = append(r.Fixes, f)
}

// ServerTemplate is the canonical first server entry.
type ServerTemplate struct {
	URL         string
	Description string
}

// ResponseOverride forces the responses of one operation to a fixed set of
// status code / description pairs, discarding whatever was there.
type ResponseOverride struct {
	Path      string
	Method    string
	Responses map[string]string
}

// OperationIDOverride forces one operation's operationId to a fixed value.
type OperationIDOverride struct {
	Path        string
	Method      string
	OperationID string
}

// Fixer applies structural repairs to documents. All fields are
// configuration data; New returns the defaults for the document pair this
// tool was built for, and every field may be replaced before calling Fix.
type Fixer struct {
	// ServerTemplate rewrites the first server entry when servers is
	// non-empty. The zero value disables the repair.
	ServerTemplate ServerTemplate

	// ResponseOverrides are applied to operations that exist; absent
	// operations are skipped silently.
	ResponseOverrides []ResponseOverride

	// RemovePathPrefixes lists disallowed path prefixes; every path whose
	// pattern starts with one of them is deleted.
	RemovePathPrefixes []string

	// RemoveTags lists tag names whose entries are removed from the
	// top-level tags sequence.
	RemoveTags []string

	// OperationIDOverrides are applied to operations that exist; absent
	// operations are skipped silently.
	OperationIDOverrides []OperationIDOverride

	// ComponentSource, when set, supplies definition bodies for the
	// copied-missing-component repair: references reachable from paths
	// that resolve in neither the document nor its components are copied
	// from this source document. Left nil, the repair is a no-op.
	ComponentSource *document.Document

	// ComponentCategories are the categories scanned by the
	// copied-missing-component repair (default schemas and parameters).
	ComponentCategories []string

	// EnabledFixes specifies which fix types to apply.
	// If nil or empty, DefaultFixTypes() are enabled.
	EnabledFixes []FixType

	// Logger receives skip diagnostics. Defaults to NopLogger.
	Logger document.Logger
}

// New creates a Fixer with the default repair targets.
func New() *Fixer {
	return &Fixer{
		ServerTemplate: ServerTemplate{
			URL:         "https://{subdomain}.getgrist.com/api",
			Description: "Grist API server",
		},
		ResponseOverrides: []ResponseOverride{
			{
				Path:      "/docs/{docId}/states/remove",
				Method:    "post",
				Responses: map[string]string{"200": "Success"},
			},
		},
		RemovePathPrefixes: []string{"/scim/"},
		RemoveTags:         []string{"scim"},
		OperationIDOverrides: []OperationIDOverride{
			{Path: "/docs", Method: "post", OperationID: "createOrImportDoc"},
		},
		ComponentCategories: []string{document.CategorySchemas, document.CategoryParameters},
	}
}

// isFixEnabled checks if a fix type should be applied.
func (f *Fixer) isFixEnabled(fixType FixType) bool {
	enabled := f.EnabledFixes
	if len(enabled) == 0 {
		enabled = DefaultFixTypes()
	}
	return slices.Contains(enabled, fixType)
}

func (f *Fixer) logger() document.Logger {
	if f.Logger == nil {
		return document.NopLogger{}
	}
	return f.Logger
}

// Fix applies every enabled repair to doc, mutating it in place. The
// repairs touch disjoint node sets and are each idempotent, so applying
// Fix twice yields the same document as applying it once.
func (f *Fixer) Fix(doc *document.Document) (*FixResult, error) {
	if doc == nil || doc.Root() == nil {
		return nil, &oaserrors.ConfigError{Option: "document", Message: "no document to fix"}
	}

	result := &FixResult{Document: doc}

	if f.isFixEnabled(FixTypeServerTemplate) {
		f.applyServerTemplate(doc, result)
	}
	if f.isFixEnabled(FixTypeForcedResponses) {
		f.applyResponseOverrides(doc, result)
	}
	if f.isFixEnabled(FixTypeRemovedPath) {
		f.removePrefixedPaths(doc, result)
	}
	if f.isFixEnabled(FixTypeRemovedTag) {
		f.removeTagEntries(doc, result)
	}
	if f.isFixEnabled(FixTypeEnumNull) {
		f.fixNullEnums(doc, result)
	}
	if f.isFixEnabled(FixTypeOperationIDOverride) {
		f.applyOperationIDOverrides(doc, result)
	}
	if f.isFixEnabled(FixTypeCopiedComponent) {
		f.copyMissingComponents(doc, result)
	}
	if f.isFixEnabled(FixTypeOperationIDBackfill) {
		f.backfillOperationIDs(doc, result)
	}

	result.FixCount = len(result.Fixes)
	result.Success = true
	return result, nil
}
