package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasreconcile/fixer"
	"github.com/erraggy/oasreconcile/internal/pathutil"
)

type fixInput struct {
	Doc             docInput  `json:"doc"                         jsonschema:"The document to fix"`
	ComponentSource *docInput `json:"component_source,omitempty"  jsonschema:"Document supplying definition bodies for the copied-missing-component repair"`
	Fixes           []string  `json:"fixes,omitempty"             jsonschema:"Fix types to apply; defaults to the standard set. Values: server-template\\, forced-responses\\, removed-path\\, removed-tag\\, enum-null-nullable\\, operationid-override\\, copied-missing-component\\, operationid-backfill"`
	IncludeDocument bool      `json:"include_document,omitempty"  jsonschema:"Include the fixed document in output"`
	Output          string    `json:"output,omitempty"            jsonschema:"File path to write the fixed document. If omitted the document is returned inline only when include_document is true."`
}

type fixApplied struct {
	Type        string `json:"type"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type fixOutput struct {
	FixCount  int          `json:"fix_count"`
	Fixes     []fixApplied `json:"fixes,omitempty"`
	Summary   string       `json:"summary"`
	WrittenTo string       `json:"written_to,omitempty"`
	Document  string       `json:"document,omitempty"`
}

func handleFix(_ context.Context, _ *mcp.CallToolRequest, input fixInput) (*mcp.CallToolResult, fixOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(fmt.Errorf("doc: %w", err)), fixOutput{}, nil
	}

	opts := []fixer.Option{fixer.WithDocument(doc)}
	if len(input.Fixes) > 0 {
		fixes, err := parseFixTypes(input.Fixes)
		if err != nil {
			return errResult(err), fixOutput{}, nil
		}
		opts = append(opts, fixer.WithEnabledFixes(fixes...))
	}
	if input.ComponentSource != nil {
		source, err := input.ComponentSource.resolve()
		if err != nil {
			return errResult(fmt.Errorf("component_source: %w", err)), fixOutput{}, nil
		}
		opts = append(opts, fixer.WithComponentSource(source))
	}

	result, err := fixer.FixWithOptions(opts...)
	if err != nil {
		return errResult(err), fixOutput{}, nil
	}

	output := fixOutput{
		FixCount: result.FixCount,
		Summary:  fmt.Sprintf("Applied %d fix(es).", result.FixCount),
	}
	output.Fixes = makeSlice[fixApplied](len(result.Fixes))
	for _, f := range result.Fixes {
		output.Fixes = append(output.Fixes, fixApplied{
			Type:        string(f.Type),
			Path:        f.Path,
			Description: f.Description,
		})
	}

	if input.Output != "" || input.IncludeDocument {
		data, err := doc.Marshal()
		if err != nil {
			return errResult(err), fixOutput{}, nil
		}
		if input.Output != "" {
			cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
			if pathErr != nil {
				return errResult(fmt.Errorf("invalid output path: %w", pathErr)), fixOutput{}, nil
			}
			if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), fixOutput{}, nil
			}
			output.WrittenTo = cleanPath
		}
		if input.IncludeDocument {
			output.Document = string(data)
		}
	}

	return nil, output, nil
}

// validFixTypes is the set of recognised fix type names.
var validFixTypes = func() map[string]fixer.FixType {
	types := map[string]fixer.FixType{
		string(fixer.FixTypeOperationIDBackfill): fixer.FixTypeOperationIDBackfill,
	}
	for _, ft := range fixer.DefaultFixTypes() {
		types[string(ft)] = ft
	}
	return types
}()

func parseFixTypes(names []string) ([]fixer.FixType, error) {
	fixes := make([]fixer.FixType, 0, len(names))
	for _, name := range names {
		ft, ok := validFixTypes[name]
		if !ok {
			return nil, fmt.Errorf("unknown fix type %q", name)
		}
		fixes = append(fixes, ft)
	}
	return fixes, nil
}
