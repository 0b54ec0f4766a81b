package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasreconcile/internal/maputil"
	"github.com/erraggy/oasreconcile/internal/pathutil"
	"github.com/erraggy/oasreconcile/merger"
)

type mergeInput struct {
	Official          docInput `json:"official"                      jsonschema:"The official document that receives the merge"`
	Comprehensive     docInput `json:"comprehensive"                 jsonschema:"The comprehensive document whose extra paths are imported"`
	PathPrefix        string   `json:"path_prefix,omitempty"         jsonschema:"Literal prefix segment stripped from comprehensive paths (default /api)"`
	NoTags            bool     `json:"no_tags,omitempty"             jsonschema:"Skip appending the curated tag list"`
	TransitiveClosure *bool    `json:"transitive_closure,omitempty"  jsonschema:"Collect component references across copied definitions to a fixed point (default from OASRECONCILE_TRANSITIVE_CLOSURE)"`
	IncludeDocument   bool     `json:"include_document,omitempty"    jsonschema:"Include the merged document in output"`
	Output            string   `json:"output,omitempty"              jsonschema:"File path to write the merged document. If omitted the document is returned inline only when include_document is true."`
}

type copiedComponents struct {
	Category string   `json:"category"`
	Names    []string `json:"names"`
}

type mergeOutput struct {
	PathsAdded        []string           `json:"paths_added,omitempty"`
	PathsSkipped      []string           `json:"paths_skipped,omitempty"`
	ComponentsCopied  []copiedComponents `json:"components_copied,omitempty"`
	MissingFromSource []copiedComponents `json:"missing_from_source,omitempty"`
	TagsAdded         []string           `json:"tags_added,omitempty"`
	PathCount         int                `json:"path_count"`
	Summary           string             `json:"summary"`
	WrittenTo         string             `json:"written_to,omitempty"`
	Document          string             `json:"document,omitempty"`
}

func handleMerge(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	official, err := input.Official.resolve()
	if err != nil {
		return errResult(fmt.Errorf("official: %w", err)), mergeOutput{}, nil
	}
	comprehensive, err := input.Comprehensive.resolve()
	if err != nil {
		return errResult(fmt.Errorf("comprehensive: %w", err)), mergeOutput{}, nil
	}

	config := merger.DefaultConfig()
	if input.PathPrefix != "" {
		config.PathPrefix = input.PathPrefix
	}
	if input.NoTags {
		config.Tags = nil
	}
	config.TransitiveClosure = cfg.TransitiveClosure
	if input.TransitiveClosure != nil {
		config.TransitiveClosure = *input.TransitiveClosure
	}

	result, err := merger.New(config).Merge(official, comprehensive)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		PathsAdded:        result.PathsAdded,
		PathsSkipped:      result.PathsSkipped,
		ComponentsCopied:  groupByCategory(result.ComponentsCopied),
		MissingFromSource: groupByCategory(result.MissingFromSource),
		TagsAdded:         result.TagsAdded,
		PathCount:         result.PathCount,
	}
	output.Summary = buildMergeSummary(result)

	if input.Output != "" || input.IncludeDocument {
		data, err := official.Marshal()
		if err != nil {
			return errResult(err), mergeOutput{}, nil
		}
		if input.Output != "" {
			cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
			if pathErr != nil {
				return errResult(fmt.Errorf("invalid output path: %w", pathErr)), mergeOutput{}, nil
			}
			if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), mergeOutput{}, nil
			}
			output.WrittenTo = cleanPath
		}
		if input.IncludeDocument {
			output.Document = string(data)
		}
	}

	return nil, output, nil
}

// groupByCategory flattens a category map into a deterministic list.
func groupByCategory(byCategory map[string][]string) []copiedComponents {
	groups := makeSlice[copiedComponents](len(byCategory))
	for _, category := range maputil.SortedKeys(byCategory) {
		names := byCategory[category]
		if len(names) == 0 {
			continue
		}
		groups = append(groups, copiedComponents{Category: category, Names: names})
	}
	if len(groups) == 0 {
		return nil
	}
	return groups
}

func buildMergeSummary(result *merger.MergeResult) string {
	summary := fmt.Sprintf("Added %d path(s), skipped %d existing, %d path(s) total.",
		len(result.PathsAdded), len(result.PathsSkipped), result.PathCount)
	copied := 0
	for _, names := range result.ComponentsCopied {
		copied += len(names)
	}
	if copied > 0 {
		summary += fmt.Sprintf(" Copied %d component definition(s).", copied)
	}
	if len(result.TagsAdded) > 0 {
		summary += fmt.Sprintf(" Appended %d tag(s).", len(result.TagsAdded))
	}
	if !result.HasChanges() {
		summary = "No changes; the official document already covers the comprehensive one."
	}
	return summary
}
