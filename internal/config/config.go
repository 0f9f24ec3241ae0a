package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Audit payload schema variants accepted by AUDIT_SCHEMA.
const (
	AuditSchemaV1 = "v1"
	AuditSchemaV2 = "v2"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// SupabaseConfig identifies the hosted REST table endpoint. It is read-only
// after Load and handed to the submission client explicitly.
type SupabaseConfig struct {
	URL     string `env:"SUPABASE_URL"`
	AnonKey string `env:"SUPABASE_ANON_KEY"`
}

// Missing lists the environment variables that still need a value.
func (s SupabaseConfig) Missing() []string {
	var missing []string
	if strings.TrimSpace(s.URL) == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if strings.TrimSpace(s.AnonKey) == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	return missing
}

// Configured reports whether both the base URL and the key are present.
func (s SupabaseConfig) Configured() bool {
	return len(s.Missing()) == 0
}

// Host returns the host part of the base URL, or an empty string.
func (s SupabaseConfig) Host() string {
	u, err := url.Parse(strings.TrimSpace(s.URL))
	if err != nil {
		return ""
	}
	return u.Host
}

// FormConfig controls the lead form state machines.
type FormConfig struct {
	ModalResetDelay  time.Duration `env:"FORM_MODAL_RESET_DELAY" envDefault:"2s"`
	InlineResetDelay time.Duration `env:"FORM_INLINE_RESET_DELAY" envDefault:"3s"`
	InstanceTTL      time.Duration `env:"FORM_INSTANCE_TTL" envDefault:"30m"`
	AuditSchema      string        `env:"AUDIT_SCHEMA" envDefault:"v1"`
}

// StubConfig controls the local development stub server.
type StubConfig struct {
	Port       string        `env:"STUB_PORT" envDefault:"3001"`
	Delay      time.Duration `env:"STUB_DELAY" envDefault:"1s"`
	AuditDelay time.Duration `env:"STUB_AUDIT_DELAY" envDefault:"1500ms"`
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	PhoneRegion string `env:"PHONE_REGION" envDefault:"US"`
	DebugBanner bool   `env:"SITE_DEBUG_BANNER" envDefault:"false"`

	// TrustProxyHeaders lets X-Forwarded-For from private/loopback peers name
	// the client. Leave off unless the site runs behind a reverse proxy.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	Supabase SupabaseConfig
	Forms    FormConfig
	Stub     StubConfig

	RateLimitForms RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
// Missing Supabase values are not an error here; callers surface them through
// SupabaseConfig.Missing so the site can still start and show a banner.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// Older .env files carry the VITE_ prefixed names.
	if cfg.Supabase.URL == "" {
		cfg.Supabase.URL = getEnv("VITE_SUPABASE_URL", "")
	}
	if cfg.Supabase.AnonKey == "" {
		cfg.Supabase.AnonKey = getEnv("VITE_SUPABASE_ANON_KEY", "")
	}
	cfg.Supabase.URL = strings.TrimRight(strings.TrimSpace(cfg.Supabase.URL), "/")
	cfg.Supabase.AnonKey = strings.TrimSpace(cfg.Supabase.AnonKey)

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_FORMS", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_FORMS value: %w", err)
	}
	cfg.RateLimitForms = rl

	switch cfg.Forms.AuditSchema {
	case AuditSchemaV1, AuditSchemaV2:
	default:
		return nil, fmt.Errorf("invalid AUDIT_SCHEMA value %q: expected %s or %s", cfg.Forms.AuditSchema, AuditSchemaV1, AuditSchemaV2)
	}

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
