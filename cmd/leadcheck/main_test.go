package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octobees/automatelabs-site/internal/config"
	"github.com/octobees/automatelabs-site/internal/supabase"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		LogLevel:  "error",
		LogFormat: "text",
		Supabase:  config.SupabaseConfig{URL: url, AnonKey: "anon-key-for-tests"},
	}
}

func defaultFlags() checkFlags {
	return checkFlags{table: "callbacks", message: "ping", timeout: time.Second}
}

func TestRunCheck_InsertsTestRecord(t *testing.T) {
	var (
		path string
		body map[string]string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	var out bytes.Buffer
	require.NoError(t, runCheck(context.Background(), &out, testConfig(server.URL), defaultFlags()))

	assert.Equal(t, "/rest/v1/callbacks", path)
	assert.Equal(t, map[string]string{
		"name":  "Test Script",
		"phone": "0000000000",
		"email": "test@example.com",
		"query": "ping",
	}, body)
	assert.Contains(t, out.String(), "Target: ")
	assert.Contains(t, out.String(), "Inserted test record into callbacks")
}

func TestRunCheck_ReportsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
	}))
	defer server.Close()

	var out bytes.Buffer
	err := runCheck(context.Background(), &out, testConfig(server.URL), defaultFlags())

	var statusErr *supabase.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, out.String(), "Insert rejected with status 401")
}

func TestRunCheck_MissingConfig(t *testing.T) {
	var out bytes.Buffer
	err := runCheck(context.Background(), &out, &config.Config{}, defaultFlags())

	assert.ErrorIs(t, err, supabase.ErrNotConfigured)
	assert.Contains(t, out.String(), "SUPABASE_URL")
}

func TestRunCheck_DryRunSendsNothing(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	flags := defaultFlags()
	flags.dryRun = true
	flags.table = "newsletter"

	var out bytes.Buffer
	require.NoError(t, runCheck(context.Background(), &out, testConfig(server.URL), flags))

	assert.Zero(t, calls)
	assert.Contains(t, out.String(), "POST "+server.URL+"/rest/v1/newsletter")
	assert.Contains(t, out.String(), `"name":"Test Script"`)
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	table, err := cmd.Flags().GetString("table")
	require.NoError(t, err)
	assert.Equal(t, "callbacks", table)

	dryRun, err := cmd.Flags().GetBool("dry-run")
	require.NoError(t, err)
	assert.False(t, dryRun)
}
