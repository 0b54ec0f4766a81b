package merger

import (
	"fmt"

	"github.com/erraggy/oasreconcile/document"
	"github.com/erraggy/oasreconcile/rename"
)

// Tag is one entry of the curated tag list appended during merge.
type Tag struct {
	// Name is the tag identifier matched against existing tags.
	Name string
	// Description is the human-readable tag description.
	Description string
}

// Config configures a merge. The lookup tables are data, not code: supply
// different tables to reconcile a differently named document pair.
type Config struct {
	// PathPrefix is the literal prefix segment stripped from source paths
	// during normalization (default "/api").
	PathPrefix string

	// Parameters renames parameter tokens and parameter name attributes
	// from the source convention to the target convention.
	Parameters rename.Table

	// ParameterRefs renames parameter definition names inside
	// "#/components/parameters/..." reference pointers on imported paths.
	ParameterRefs rename.Table

	// Categories are the component categories whose definitions are copied
	// for imported paths (default schemas and parameters).
	Categories []string

	// Tags is the curated tag list appended to the target when absent.
	// Deliberately independent of which paths were actually merged; the
	// list describes the document pair, not a single merge run.
	Tags []Tag

	// TransitiveClosure controls reference collection depth. False (the
	// default) preserves the one-level behavior: only imported path
	// subtrees are scanned, and a copied definition's own references may
	// be left dangling (reported in MergeResult.MissingFromSource). True
	// iterates collection across copied definition bodies to a fixed
	// point.
	TransitiveClosure bool

	// Logger receives skip and no-op diagnostics. Defaults to NopLogger.
	Logger document.Logger
}

// DefaultConfig returns the configuration for the document pair this tool
// was built for: the "/api" prefix convention, the standard parameter
// rename tables, schemas + parameters closure, and the curated tag list.
func DefaultConfig() Config {
	return Config{
		PathPrefix:    "/api",
		Parameters:    rename.DefaultParameters(),
		ParameterRefs: rename.DefaultParameterRefs(),
		Categories:    []string{document.CategorySchemas, document.CategoryParameters},
		Tags: []Tag{
			{Name: "admin", Description: "Installation administration endpoints"},
			{Name: "profile", Description: "User profile management"},
			{Name: "sessions", Description: "Session management"},
			{Name: "service-accounts", Description: "Service account management for API access"},
			{Name: "templates", Description: "Template documents"},
			{Name: "snapshots", Description: "Document version snapshots"},
			{Name: "proposals", Description: "Document change proposals"},
			{Name: "forms", Description: "Document forms"},
			{Name: "timing", Description: "Document timing and performance"},
			{Name: "ai", Description: "AI assistant features"},
		},
	}
}

// Merger merges a comprehensive document into an official one.
// A Merger is stateless between calls; the same instance may be reused for
// multiple document pairs sequentially.
type Merger struct {
	config Config
}

// New creates a Merger. Zero-value config fields fall back to defaults for
// categories and logger; tables are used as given (a nil table is the
// identity).
func New(config Config) *Merger {
	if len(config.Categories) == 0 {
		config.Categories = []string{document.CategorySchemas, document.CategoryParameters}
	}
	if config.Logger == nil {
		config.Logger = document.NopLogger{}
	}
	return &Merger{config: config}
}

// MergeResult reports everything a merge did, for human-readable progress
// output by the caller.
type MergeResult struct {
	// PathsAdded lists normalized path patterns imported from the source,
	// in source order.
	PathsAdded []string
	// PathsSkipped lists normalized source paths that already existed in
	// the target and were skipped whole.
	PathsSkipped []string
	// ComponentsCopied maps category to the definition names copied from
	// the source, in deterministic (sorted per collection round) order.
	ComponentsCopied map[string][]string
	// MissingFromSource maps category to referenced definition names that
	// exist in neither target nor source. These are known gaps, not
	// errors.
	MissingFromSource map[string][]string
	// TagsAdded lists curated tag names appended to the target.
	TagsAdded []string
	// PathCount is the total number of paths in the target after merge.
	PathCount int
}

// newMergeResult returns an empty result with the category maps allocated.
func newMergeResult() *MergeResult {
	return &MergeResult{
		ComponentsCopied:  make(map[string][]string),
		MissingFromSource: make(map[string][]string),
	}
}

// Copied returns the definitions copied for one category.
func (r *MergeResult) Copied(category string) []string {
	return r.ComponentsCopied[category]
}

// Missing returns the known-gap definition names for one category.
func (r *MergeResult) Missing(category string) []string {
	return r.MissingFromSource[category]
}

// HasChanges reports whether the merge modified the target at all.
func (r *MergeResult) HasChanges() bool {
	if len(r.PathsAdded) > 0 || len(r.TagsAdded) > 0 {
		return true
	}
	for _, names := range r.ComponentsCopied {
		if len(names) > 0 {
			return true
		}
	}
	return false
}

// stagedPath is a normalized source path waiting for insertion.
type stagedPath struct {
	path string
	item *document.Node
}

// Merge imports the source's missing paths and their component closure
// into target, mutating target in place. Both documents must satisfy the
// structural preconditions (paths and components mappings present);
// violations abort the merge with a *oaserrors.PreconditionError.
func (m *Merger) Merge(target, source *document.Document) (*MergeResult, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("merger: target document: %w", err)
	}
	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("merger: source document: %w", err)
	}

	result := newMergeResult()
	targetPaths := target.Paths()

	// Stage every source path whose normalized pattern the target lacks.
	// The target's definition always wins at whole-path granularity.
	staged := make([]stagedPath, 0)
	stagedSet := make(map[string]bool)
	for _, sourcePath := range source.Paths().Keys() {
		normalized := rename.NormalizePath(sourcePath, m.config.PathPrefix, m.config.Parameters)
		if targetPaths.Has(normalized) || stagedSet[normalized] {
			result.PathsSkipped = append(result.PathsSkipped, normalized)
			m.config.Logger.Debug("skipped existing path", "path", normalized, "source", sourcePath)
			continue
		}

		item := source.Paths().Get(sourcePath).Clone()
		rename.RenamePathItemParameters(item, m.config.Parameters)
		rename.NewRewriter(document.CategoryParameters, m.config.ParameterRefs).Rewrite(item)

		staged = append(staged, stagedPath{path: normalized, item: item})
		stagedSet[normalized] = true
	}

	for _, s := range staged {
		targetPaths.Set(s.path, s.item)
		result.PathsAdded = append(result.PathsAdded, s.path)
		m.config.Logger.Info("imported path", "path", s.path)
	}

	m.copyComponents(target, source, staged, result)
	m.reconcileTags(target, result)

	result.PathCount = targetPaths.Len()
	return result, nil
}
