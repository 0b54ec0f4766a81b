package document

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	// All methods must be safe no-ops.
	l.Debug("msg", "k", "v")
	l.Info("msg")
	l.Warn("msg")
	l.Error("msg")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler))

	l.Info("merged path", "path", "/orgs/{orgId}")
	assert.Contains(t, buf.String(), "merged path")
	assert.Contains(t, buf.String(), "/orgs/{orgId}")

	buf.Reset()
	l.With("component", "merger").Debug("skip")
	assert.Contains(t, buf.String(), "component=merger")
}

func TestSlogAdapterNilDefault(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil))
}
