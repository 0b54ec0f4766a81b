// Package commands provides CLI command handlers for oasreconcile.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/oasreconcile/document"
	"github.com/erraggy/oasreconcile/internal/cliutil"
	"github.com/erraggy/oasreconcile/internal/pathutil"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ReadDocument parses a YAML document from a file path or stdin.
func ReadDocument(path string) (*document.Document, error) {
	var data []byte
	var err error
	if path == StdinFilePath {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return document.Parse(data)
}

// WriteDocument marshals doc and writes it to outputPath, or to stdout
// when outputPath is empty.
func WriteDocument(doc *document.Document, outputPath string) error {
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	if outputPath == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing document to stdout: %w", err)
		}
		return nil
	}

	cleanPath, err := pathutil.SanitizeOutputPath(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// ValidateOutputPath checks that the output path does not overwrite any of
// the input files.
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	if outputPath == "" {
		return nil
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInput, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutput == absInput {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}
	return nil
}

// diagf writes a diagnostic line to stderr unless quiet is set. Stdout
// stays clean for the document so commands can be pipelined.
func diagf(quiet bool, format string, args ...any) {
	if quiet {
		return
	}
	cliutil.Writef(os.Stderr, format, args...)
}
