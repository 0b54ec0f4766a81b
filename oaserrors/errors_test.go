package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "message only",
			err:      &ParseError{Message: "unexpected document end"},
			expected: "parse error: unexpected document end",
		},
		{
			name:     "with path",
			err:      &ParseError{Path: "api.yaml", Message: "bad node"},
			expected: "parse error in api.yaml: bad node",
		},
		{
			name:     "with line and column",
			err:      &ParseError{Path: "api.yaml", Line: 12, Column: 3, Message: "duplicate key"},
			expected: "parse error in api.yaml at line 12, column 3: duplicate key",
		},
		{
			name:     "with cause",
			err:      &ParseError{Message: "decode failed", Cause: errors.New("boom")},
			expected: "parse error: decode failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrParse))
			assert.False(t, errors.Is(tt.err, ErrPrecondition))
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &ParseError{Message: "wrapper", Cause: cause}
	assert.Equal(t, cause, errors.Unwrap(err))

	wrapped := fmt.Errorf("outer: %w", err)
	var pe *ParseError
	assert.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, "wrapper", pe.Message)
}

func TestPreconditionError(t *testing.T) {
	err := &PreconditionError{Section: "paths", Message: "expected a mapping"}
	assert.Equal(t, "precondition violation in section paths: expected a mapping", err.Error())
	assert.True(t, errors.Is(err, ErrPrecondition))
	assert.False(t, errors.Is(err, ErrParse))
}

func TestPreconditionErrorBare(t *testing.T) {
	err := &PreconditionError{}
	assert.Equal(t, "precondition violation", err.Error())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "input", Message: "exactly one input source must be specified"}
	assert.Equal(t, "configuration error for option input: exactly one input source must be specified", err.Error())
	assert.True(t, errors.Is(err, ErrConfig))
	assert.False(t, errors.Is(err, ErrPrecondition))
}
