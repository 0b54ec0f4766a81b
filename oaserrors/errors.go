// Package oaserrors provides structured error types for oasreconcile.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML deserialization failures and structural issues
//   - PreconditionError: documents missing the top-level sections a pass requires
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := m.Merge(official, comprehensive)
//	if err != nil {
//	    if errors.Is(err, oaserrors.ErrPrecondition) {
//	        // The input document is missing paths/components; not recoverable.
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrPrecondition indicates an input document violated a structural
	// precondition (for example a missing top-level paths section).
	ErrPrecondition = errors.New("precondition violation")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a document into the tree model.
// This includes YAML deserialization errors and structural issues such as
// duplicate mapping keys.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// PreconditionError represents a structurally malformed input document.
// A pass raises it when a top-level section it depends on (paths,
// components) is absent or has the wrong shape. Precondition violations
// are not recoverable; the run aborts.
type PreconditionError struct {
	// Section is the top-level section that failed the check (e.g. "paths")
	Section string
	// Message describes what was expected
	Message string
}

// Error returns a human-readable error message.
func (e *PreconditionError) Error() string {
	msg := "precondition violation"
	if e.Section != "" {
		msg += " in section " + e.Section
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the configuration option that was invalid
	Option string
	// Message describes why the configuration is invalid
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for option " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
