package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/erraggy/oasreconcile"
	"github.com/erraggy/oasreconcile/fixer"
	"github.com/erraggy/oasreconcile/internal/cliutil"
)

// FixFlags contains flags for the fix command
type FixFlags struct {
	Output string
	Fixes  string
	Source string
	Quiet  bool
}

// SetupFixFlags creates and configures a FlagSet for the fix command.
// Returns the FlagSet and a FixFlags struct with bound flag variables.
func SetupFixFlags() (*flag.FlagSet, *FixFlags) {
	fs := flag.NewFlagSet("fix", flag.ContinueOnError)
	flags := &FixFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Fixes, "fixes", "", "comma-separated fix types to apply (default: the standard set)")
	fs.StringVar(&flags.Source, "source", "", "document supplying definition bodies for the copied-missing-component repair")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasreconcile fix [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Apply targeted repairs to an OpenAPI document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nFix Types:\n")
		cliutil.Writef(fs.Output(), "  server-template            rewrite the first server entry to the canonical template\n")
		cliutil.Writef(fs.Output(), "  forced-responses           overwrite known-bad operation responses\n")
		cliutil.Writef(fs.Output(), "  removed-path               remove paths under disallowed prefixes\n")
		cliutil.Writef(fs.Output(), "  removed-tag                remove disallowed tag entries\n")
		cliutil.Writef(fs.Output(), "  enum-null-nullable         remove null from enums and declare nullable\n")
		cliutil.Writef(fs.Output(), "  operationid-override       overwrite known-bad operationIds\n")
		cliutil.Writef(fs.Output(), "  copied-missing-component   copy unresolvable definitions from --source\n")
		cliutil.Writef(fs.Output(), "  operationid-backfill       derive operationIds for operations without one (opt-in)\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasreconcile fix merged.yaml\n")
		cliutil.Writef(fs.Output(), "  oasreconcile fix -o fixed.yaml merged.yaml\n")
		cliutil.Writef(fs.Output(), "  oasreconcile fix --fixes removed-path,removed-tag merged.yaml\n")
		cliutil.Writef(fs.Output(), "  oasreconcile fix --source comprehensive.yaml merged.yaml\n")
		cliutil.Writef(fs.Output(), "  oasreconcile merge -q openapi.yaml comprehensive.yaml | oasreconcile fix -q -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Fixes applied (or none needed)\n")
		cliutil.Writef(fs.Output(), "  1    Failed to parse or fix the document\n")
	}

	return fs, flags
}

// HandleFix executes the fix command
func HandleFix(args []string) error {
	fs, flags := SetupFixFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("fix command requires exactly one file path or '-' for stdin")
	}

	docPath := fs.Arg(0)
	if err := ValidateOutputPath(flags.Output, []string{docPath, flags.Source}); err != nil {
		return err
	}

	doc, err := ReadDocument(docPath)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	opts := []fixer.Option{fixer.WithDocument(doc)}
	if flags.Fixes != "" {
		fixes, err := parseFixList(flags.Fixes)
		if err != nil {
			return err
		}
		opts = append(opts, fixer.WithEnabledFixes(fixes...))
	}
	if flags.Source != "" {
		source, err := ReadDocument(flags.Source)
		if err != nil {
			return fmt.Errorf("parsing component source: %w", err)
		}
		opts = append(opts, fixer.WithComponentSource(source))
	}

	startTime := time.Now()
	result, err := fixer.FixWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("fixing document: %w", err)
	}
	totalTime := time.Since(startTime)

	diagf(flags.Quiet, "OpenAPI Document Fixer\n")
	diagf(flags.Quiet, "======================\n\n")
	diagf(flags.Quiet, "oasreconcile version: %s\n", oasreconcile.Version())
	diagf(flags.Quiet, "Document: %s\n", displayPath(docPath))
	diagf(flags.Quiet, "Total Time: %v\n\n", totalTime)

	if !flags.Quiet {
		if result.HasFixes() {
			diagf(false, "Fixes Applied (%d):\n", result.FixCount)
			for _, fix := range result.Fixes {
				diagf(false, "  - [%s] %s: %s\n", fix.Type, fix.Path, fix.Description)
			}
			diagf(false, "\n✓ Applied %d fix(es)\n", result.FixCount)
		} else {
			diagf(false, "✓ No fixes needed\n")
		}
	}

	return WriteDocument(doc, flags.Output)
}

// parseFixList parses a comma-separated fix type list.
func parseFixList(list string) ([]fixer.FixType, error) {
	known := make(map[string]fixer.FixType)
	for _, ft := range fixer.DefaultFixTypes() {
		known[string(ft)] = ft
	}
	known[string(fixer.FixTypeOperationIDBackfill)] = fixer.FixTypeOperationIDBackfill

	var fixes []fixer.FixType
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		ft, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown fix type %q", name)
		}
		fixes = append(fixes, ft)
	}
	if len(fixes) == 0 {
		return nil, fmt.Errorf("no fix types given")
	}
	return fixes, nil
}
