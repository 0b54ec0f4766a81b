package oasreconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "dev", Version(), "development builds report 'dev'")
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "oasreconcile/dev", UserAgent())
}
