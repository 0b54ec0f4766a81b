package fixer

import (
	"fmt"

	"github.com/erraggy/oasreconcile/document"
	"github.com/erraggy/oasreconcile/oaserrors"
)

// Option is a function that configures a fix operation.
type Option func(*fixConfig) error

// fixConfig holds configuration for a fix operation.
type fixConfig struct {
	// Input source (exactly one must be set)
	doc  *document.Document
	data []byte

	// Configuration options
	enabledFixes    []FixType
	logger          document.Logger
	componentSource *document.Document
}

// WithDocument uses an already parsed document as the input source.
func WithDocument(doc *document.Document) Option {
	return func(cfg *fixConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "document", Message: "document must not be nil"}
		}
		cfg.doc = doc
		return nil
	}
}

// WithBytes parses YAML bytes as the input source.
func WithBytes(data []byte) Option {
	return func(cfg *fixConfig) error {
		if len(data) == 0 {
			return &oaserrors.ConfigError{Option: "bytes", Message: "input must not be empty"}
		}
		cfg.data = data
		return nil
	}
}

// WithEnabledFixes restricts fixing to the given fix types.
func WithEnabledFixes(fixes ...FixType) Option {
	return func(cfg *fixConfig) error {
		cfg.enabledFixes = fixes
		return nil
	}
}

// WithLogger sets the logger receiving skip diagnostics.
func WithLogger(logger document.Logger) Option {
	return func(cfg *fixConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithComponentSource supplies the document from which the
// copied-missing-component repair reads definition bodies.
func WithComponentSource(source *document.Document) Option {
	return func(cfg *fixConfig) error {
		cfg.componentSource = source
		return nil
	}
}

// FixWithOptions fixes a document using functional options. It combines
// input source selection and configuration in a single call:
//
//	result, err := fixer.FixWithOptions(
//	    fixer.WithBytes(data),
//	    fixer.WithEnabledFixes(fixer.FixTypeEnumNull),
//	)
func FixWithOptions(opts ...Option) (*FixResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("fixer: invalid options: %w", err)
	}

	doc := cfg.doc
	if doc == nil {
		doc, err = document.Parse(cfg.data)
		if err != nil {
			return nil, fmt.Errorf("fixer: parsing input: %w", err)
		}
	}

	f := New()
	f.EnabledFixes = cfg.enabledFixes
	f.Logger = cfg.logger
	f.ComponentSource = cfg.componentSource
	return f.Fix(doc)
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*fixConfig, error) {
	cfg := &fixConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.doc != nil {
		sources++
	}
	if cfg.data != nil {
		sources++
	}
	if sources != 1 {
		return nil, &oaserrors.ConfigError{
			Option:  "input",
			Message: "exactly one input source must be specified (WithDocument or WithBytes)",
		}
	}
	return cfg, nil
}
