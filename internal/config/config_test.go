package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SUPABASE_URL", "SUPABASE_ANON_KEY", "VITE_SUPABASE_URL", "VITE_SUPABASE_ANON_KEY",
		"PORT", "RATE_LIMIT_FORMS", "AUDIT_SCHEMA", "FORM_MODAL_RESET_DELAY", "STUB_DELAY",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("SUPABASE_ANON_KEY", " anon-key ")
	t.Setenv("PORT", "9000")
	t.Setenv("RATE_LIMIT_FORMS", "3/sec")
	t.Setenv("FORM_MODAL_RESET_DELAY", "250ms")
	t.Setenv("STUB_DELAY", "0s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://abc.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "anon-key", cfg.Supabase.AnonKey)
	assert.True(t, cfg.Supabase.Configured())
	assert.Equal(t, "abc.supabase.co", cfg.Supabase.Host())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, RateLimitConfig{Requests: 3, Interval: time.Second}, cfg.RateLimitForms)
	assert.Equal(t, 250*time.Millisecond, cfg.Forms.ModalResetDelay)
	assert.Equal(t, 3*time.Second, cfg.Forms.InlineResetDelay)
	assert.Equal(t, time.Duration(0), cfg.Stub.Delay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Stub.AuditDelay)
	assert.Equal(t, "3001", cfg.Stub.Port)
	assert.Equal(t, AuditSchemaV1, cfg.Forms.AuditSchema)
}

func TestLoadDefaultsWithoutSupabase(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err, "missing supabase values must not fail Load")

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Supabase.Configured())
	assert.Equal(t, []string{"SUPABASE_URL", "SUPABASE_ANON_KEY"}, cfg.Supabase.Missing())
	assert.Equal(t, RateLimitConfig{Requests: 10, Interval: time.Minute}, cfg.RateLimitForms)
}

func TestLoadViteFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_SUPABASE_URL", "https://vite.supabase.co")
	t.Setenv("VITE_SUPABASE_ANON_KEY", "vite-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://vite.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "vite-key", cfg.Supabase.AnonKey)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_FORMS", "xyz")
	_, err := Load()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("AUDIT_SCHEMA", "v3")
	_, err = Load()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("FORM_MODAL_RESET_DELAY", "soon")
	_, err = Load()
	require.Error(t, err)
}

func TestParseRateLimit(t *testing.T) {
	cfg, err := parseRateLimit("5/sec")
	require.NoError(t, err)
	assert.Equal(t, RateLimitConfig{Requests: 5, Interval: time.Second}, cfg)

	for _, bad := range []string{"bad-format", "0/min", "5/day"} {
		_, err := parseRateLimit(bad)
		assert.Error(t, err, bad)
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("FOO")
	assert.Equal(t, "fallback", getEnv("FOO", "fallback"))
	t.Setenv("FOO", "value")
	assert.Equal(t, "value", getEnv("FOO", "fallback"))
}
