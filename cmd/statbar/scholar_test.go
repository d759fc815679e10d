// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwu/statbar/internal/cache"
	"github.com/hwu/statbar/internal/scholar"
	"github.com/hwu/statbar/pkg/types"
)

const scholarBody = `{
	"author": {"name": "Ada Lovelace"},
	"cited_by": {"table": [{"citations": {"all": 1234}}]}
}`

func scholarTestConfig(t *testing.T, baseURL string) types.ScholarConfig {
	t.Helper()
	return types.ScholarConfig{
		HTTPConfig:  types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "statbar-test"},
		BaseURL:     baseURL,
		AuthorID:    "AbC123",
		APIKey:      "serp_key",
		CacheDir:    t.TempDir(),
		CacheWindow: 4 * time.Hour,
	}
}

func TestRenderScholarLiveFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, scholarBody)
	}))
	defer ts.Close()

	cfg := scholarTestConfig(t, ts.URL)

	var out strings.Builder
	require.NoError(t, renderScholar(context.Background(), cfg, "", "menu", &out))

	assert.Contains(t, firstLine(out.String()), "1234")
	assert.NotContains(t, out.String(), "(cached)")
	assert.Contains(t, out.String(), "href=https://scholar.google.com/citations?user=AbC123")
}

func TestRenderScholarStaleFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"error": "Account has run out of searches."}`)
	}))
	defer ts.Close()

	cfg := scholarTestConfig(t, ts.URL)

	store := cache.New(cfg.CacheDir, cfg.CacheWindow)
	store.Now = func() time.Time { return time.Now().Add(-6 * time.Hour) }
	require.NoError(t, store.Save(scholar.CacheKey("AbC123"), types.ScholarStats{
		Name: "Ada Lovelace", Citations: 1200,
	}))

	var out strings.Builder
	require.NoError(t, renderScholar(context.Background(), cfg, "", "menu", &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Contains(t, lines[0], "(cached)")
	assert.Contains(t, lines[len(lines)-1], "run out of searches")
}

func TestRenderScholarHardFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cfg := scholarTestConfig(t, ts.URL)

	var out strings.Builder
	require.NoError(t, renderScholar(context.Background(), cfg, "", "menu", &out))

	assert.Contains(t, out.String(), "❌ Error")
	assert.Contains(t, out.String(), "🔄 Try Again | refresh=true")
	assert.NotContains(t, out.String(), "Total Citations")
}

func TestRenderScholarYAMLOutput(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, scholarBody)
	}))
	defer ts.Close()

	cfg := scholarTestConfig(t, ts.URL)

	var out strings.Builder
	require.NoError(t, renderScholar(context.Background(), cfg, "", "yaml", &out))

	assert.Contains(t, out.String(), "name: Ada Lovelace")
	assert.Contains(t, out.String(), "citations: 1234")
}

func TestDumpRecordUnknownFormat(t *testing.T) {
	var out strings.Builder
	err := dumpRecord(&out, "xml", struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}
