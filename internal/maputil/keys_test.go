package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]bool
		expected []string
	}{
		{
			name:     "unsorted input",
			input:    map[string]bool{"workspaceId": true, "attachmentId": true, "orgId": true},
			expected: []string{"attachmentId", "orgId", "workspaceId"},
		},
		{
			name:     "single key",
			input:    map[string]bool{"docId": true},
			expected: []string{"docId"},
		},
		{
			name:     "empty map",
			input:    map[string]bool{},
			expected: []string{},
		},
		{
			name:     "nil map",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SortedKeys(tt.input))
		})
	}
}

func TestSortedKeysValueTypes(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SortedKeys(map[string]string{"b": "2", "a": "1"}))
	assert.Equal(t, []string{"x", "y"}, SortedKeys(map[string][]string{"y": nil, "x": {"loc"}}))
}
