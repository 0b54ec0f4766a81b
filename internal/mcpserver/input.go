package mcpserver

import (
	"fmt"
	"os"

	"github.com/erraggy/oasreconcile/document"
)

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline YAML document content"`
}

// resolve parses the document from whichever input was provided.
func (in docInput) resolve() (*document.Document, error) {
	switch {
	case in.File != "" && in.Content != "":
		return nil, fmt.Errorf("only one of file or content may be provided")
	case in.File != "":
		data, err := os.ReadFile(in.File)
		if err != nil {
			return nil, fmt.Errorf("reading document: %w", err)
		}
		return document.Parse(data)
	case in.Content != "":
		if int64(len(in.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASRECONCILE_MAX_INLINE_SIZE to increase",
				len(in.Content), cfg.MaxInlineSize)
		}
		return document.Parse([]byte(in.Content))
	default:
		return nil, fmt.Errorf("one of file or content must be provided")
	}
}
