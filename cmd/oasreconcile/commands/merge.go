package commands

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/erraggy/oasreconcile"
	"github.com/erraggy/oasreconcile/internal/cliutil"
	"github.com/erraggy/oasreconcile/internal/maputil"
	"github.com/erraggy/oasreconcile/merger"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Output     string
	PathPrefix string
	NoTags     bool
	Transitive bool
	Quiet      bool
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
// Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.PathPrefix, "prefix", "/api", "literal prefix segment stripped from comprehensive paths")
	fs.BoolVar(&flags.NoTags, "no-tags", false, "skip appending the curated tag list")
	fs.BoolVar(&flags.Transitive, "transitive", false, "collect component references across copied definitions to a fixed point")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasreconcile merge [flags] <official> <comprehensive>\n\n")
		cliutil.Writef(fs.Output(), "Merge two OpenAPI documents describing the same API.\n\n")
		cliutil.Writef(fs.Output(), "Paths present in the comprehensive document but absent from the official\n")
		cliutil.Writef(fs.Output(), "one are imported with normalized naming (prefix stripped, parameters\n")
		cliutil.Writef(fs.Output(), "renamed, $refs rewritten), together with the schema and parameter\n")
		cliutil.Writef(fs.Output(), "definitions they reference. The official document wins every conflict.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasreconcile merge openapi.yaml comprehensive.yaml\n")
		cliutil.Writef(fs.Output(), "  oasreconcile merge -o merged.yaml openapi.yaml comprehensive.yaml\n")
		cliutil.Writef(fs.Output(), "  oasreconcile merge -q openapi.yaml comprehensive.yaml | oasreconcile fix -q -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Merge completed\n")
		cliutil.Writef(fs.Output(), "  1    A document failed to parse or violated the merge preconditions\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	fs, flags := SetupMergeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("merge command requires exactly two file paths (official, comprehensive)")
	}

	officialPath := fs.Arg(0)
	comprehensivePath := fs.Arg(1)
	if officialPath == StdinFilePath && comprehensivePath == StdinFilePath {
		return fmt.Errorf("only one input may be read from stdin")
	}
	if err := ValidateOutputPath(flags.Output, []string{officialPath, comprehensivePath}); err != nil {
		return err
	}

	official, err := ReadDocument(officialPath)
	if err != nil {
		return fmt.Errorf("official document: %w", err)
	}
	comprehensive, err := ReadDocument(comprehensivePath)
	if err != nil {
		return fmt.Errorf("comprehensive document: %w", err)
	}

	config := merger.DefaultConfig()
	config.PathPrefix = flags.PathPrefix
	config.TransitiveClosure = flags.Transitive
	if flags.NoTags {
		config.Tags = nil
	}

	startTime := time.Now()
	result, err := merger.New(config).Merge(official, comprehensive)
	if err != nil {
		return fmt.Errorf("merging documents: %w", err)
	}
	totalTime := time.Since(startTime)

	diagf(flags.Quiet, "OpenAPI Document Merge\n")
	diagf(flags.Quiet, "======================\n\n")
	diagf(flags.Quiet, "oasreconcile version: %s\n", oasreconcile.Version())
	diagf(flags.Quiet, "Official: %s\n", displayPath(officialPath))
	diagf(flags.Quiet, "Comprehensive: %s\n", displayPath(comprehensivePath))
	diagf(flags.Quiet, "Total Time: %v\n\n", totalTime)

	if !flags.Quiet {
		printMergeReport(result)
	}

	return WriteDocument(official, flags.Output)
}

func printMergeReport(result *merger.MergeResult) {
	if len(result.PathsAdded) > 0 {
		diagf(false, "Paths Added (%d):\n", len(result.PathsAdded))
		for _, p := range result.PathsAdded {
			diagf(false, "  + %s\n", p)
		}
		diagf(false, "\n")
	}
	if len(result.PathsSkipped) > 0 {
		diagf(false, "Paths Skipped (%d, already present):\n", len(result.PathsSkipped))
		for _, p := range result.PathsSkipped {
			diagf(false, "  = %s\n", p)
		}
		diagf(false, "\n")
	}
	for _, category := range maputil.SortedKeys(result.ComponentsCopied) {
		names := result.ComponentsCopied[category]
		if len(names) == 0 {
			continue
		}
		diagf(false, "Copied %s (%d):\n", category, len(names))
		for _, name := range names {
			diagf(false, "  + %s\n", name)
		}
		diagf(false, "\n")
	}
	for _, category := range maputil.SortedKeys(result.MissingFromSource) {
		names := result.MissingFromSource[category]
		if len(names) == 0 {
			continue
		}
		diagf(false, "Missing %s (%d, unresolvable in either document):\n", category, len(names))
		for _, name := range names {
			diagf(false, "  ? %s\n", name)
		}
		diagf(false, "\n")
	}
	if len(result.TagsAdded) > 0 {
		diagf(false, "Tags Appended (%d): %v\n\n", len(result.TagsAdded), result.TagsAdded)
	}

	if result.HasChanges() {
		diagf(false, "✓ Merged %d path(s), %d path(s) total\n", len(result.PathsAdded), result.PathCount)
	} else {
		diagf(false, "✓ No changes - the official document already covers the comprehensive one\n")
	}
}

func displayPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}
