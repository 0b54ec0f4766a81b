package fixer

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasreconcile/document"
)

// httpMethods are the mapping keys of a PathItem that hold operations.
var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// applyOperationIDOverrides overwrites the operationId of each configured
// operation, regardless of its current value. Operations absent from the
// document are skipped.
func (f *Fixer) applyOperationIDOverrides(doc *document.Document, result *FixResult) {
	paths := doc.Paths()
	if !paths.IsMapping() {
		return
	}

	for _, override := range f.OperationIDOverrides {
		op := paths.Get(override.Path).Get(override.Method)
		if !op.IsMapping() {
			f.logger().Debug("operationId override target absent",
				"path", override.Path, "method", override.Method)
			continue
		}

		before, _ := op.Get("operationId").StringValue()
		op.Set("operationId", document.NewScalar(override.OperationID))

		result.record(Fix{
			Type:        FixTypeOperationIDOverride,
			Path:        fmt.Sprintf("paths.%s.%s.operationId", override.Path, override.Method),
			Description: fmt.Sprintf("Set operationId of %s %s to '%s'", override.Method, override.Path, override.OperationID),
			Before:      before,
			After:       override.OperationID,
		})
	}
}

// backfillOperationIDs assigns a derived operationId to every operation
// that has none, built from the HTTP method and the title-cased path
// segments: post /orgs/{orgId}/access becomes postOrgsOrgIdAccess.
func (f *Fixer) backfillOperationIDs(doc *document.Document, result *FixResult) {
	paths := doc.Paths()
	if !paths.IsMapping() {
		return
	}

	for _, pattern := range paths.Keys() {
		item := paths.Get(pattern)
		if !item.IsMapping() {
			continue
		}
		for _, method := range httpMethods {
			op := item.Get(method)
			if !op.IsMapping() || op.Has("operationId") {
				continue
			}
			derived := deriveOperationID(method, pattern)
			op.Set("operationId", document.NewScalar(derived))
			result.record(Fix{
				Type:        FixTypeOperationIDBackfill,
				Path:        fmt.Sprintf("paths.%s.%s.operationId", pattern, method),
				Description: fmt.Sprintf("Derived operationId '%s' for %s %s", derived, method, pattern),
				After:       derived,
			})
		}
	}
}

// deriveOperationID builds an operationId from a method and a path
// pattern. Parameter braces are dropped and each segment piece is
// title-cased with Unicode-aware casing, preserving interior capitals so
// camelCase parameter names survive (orgId -> OrgId).
func deriveOperationID(method, pattern string) string {
	titleCaser := cases.Title(language.English, cases.NoLower)

	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	for _, segment := range strings.Split(pattern, "/") {
		segment = strings.Trim(segment, "{}")
		pieces := strings.FieldsFunc(segment, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, piece := range pieces {
			b.WriteString(titleCaser.String(piece))
		}
	}
	return b.String()
}
