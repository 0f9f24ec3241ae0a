package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriterFormats(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, "info", "json")
	log.Info("hello", Scope("forms"))
	assert.Contains(t, buf.String(), `"scope":"forms"`)

	buf.Reset()
	log = NewWithWriter(buf, "warn", "text")
	log.Info("dropped")
	assert.Empty(t, buf.String())
	log.Warn("kept", Error(errors.New("boom")))
	assert.Contains(t, buf.String(), "error=boom")
}

func TestAttrs(t *testing.T) {
	attr := Scope("supabase")
	assert.Equal(t, "scope", attr.Key)
	assert.Equal(t, "supabase", attr.Value.String())

	err := errors.New("boom")
	attr = Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestDiscard(t *testing.T) {
	log := Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
