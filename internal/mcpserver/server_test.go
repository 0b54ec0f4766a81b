package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))
	assert.Equal(t, "parsing <path>: unexpected node",
		sanitizeError(errors.New("parsing /home/alice/specs/api.yaml: unexpected node")))
	assert.Equal(t, "plain message", sanitizeError(errors.New("plain message")))
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	assert.True(t, result.IsError)
	assert.Len(t, result.Content, 1)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[int](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("OASRECONCILE_TEST_BOOL", "true")
	assert.True(t, envBool("OASRECONCILE_TEST_BOOL", false))
	t.Setenv("OASRECONCILE_TEST_BOOL", "nonsense")
	assert.False(t, envBool("OASRECONCILE_TEST_BOOL", false))
	assert.True(t, envBool("OASRECONCILE_TEST_UNSET", true))

	t.Setenv("OASRECONCILE_TEST_INT", "2048")
	assert.Equal(t, int64(2048), envInt64("OASRECONCILE_TEST_INT", 1))
	t.Setenv("OASRECONCILE_TEST_INT", "-5")
	assert.Equal(t, int64(1), envInt64("OASRECONCILE_TEST_INT", 1))
}
