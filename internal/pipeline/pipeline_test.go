// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwu/statbar/internal/cache"
)

type record struct {
	Value string `json:"value"`
}

func TestRunFreshCacheSkipsFetch(t *testing.T) {
	store := cache.New(t.TempDir(), time.Hour)
	require.NoError(t, store.Save("k", record{Value: "cached"}))

	fetchCalled := false
	out := Run(context.Background(), store, "k", func(context.Context) (record, error) {
		fetchCalled = true
		return record{Value: "live"}, nil
	})

	assert.False(t, fetchCalled, "fresh cache must short-circuit the fetch")
	assert.Equal(t, StateFresh, out.State)
	assert.False(t, out.Live)
	assert.Equal(t, "cached", out.Data.Value)
	assert.NoError(t, out.Err)
}

func TestRunMissFetchesAndWritesThrough(t *testing.T) {
	store := cache.New(t.TempDir(), time.Hour)

	out := Run(context.Background(), store, "k", func(context.Context) (record, error) {
		return record{Value: "live"}, nil
	})

	assert.Equal(t, StateFresh, out.State)
	assert.True(t, out.Live)
	assert.Equal(t, "live", out.Data.Value)

	// The successful fetch was written through.
	var cached record
	require.True(t, store.Load("k", &cached))
	assert.Equal(t, "live", cached.Value)
}

func TestRunFetchFailureServesStaleCache(t *testing.T) {
	store := cache.New(t.TempDir(), time.Hour)

	// Write an entry, then move the clock past the window so Load misses
	// but LoadStale still hits.
	writtenAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store.Now = func() time.Time { return writtenAt }
	require.NoError(t, store.Save("k", record{Value: "stale"}))
	store.Now = func() time.Time { return writtenAt.Add(3 * time.Hour) }

	fetchErr := errors.New("connection refused")
	out := Run(context.Background(), store, "k", func(context.Context) (record, error) {
		return record{}, fetchErr
	})

	assert.Equal(t, StateStaleFallback, out.State)
	assert.Equal(t, "stale", out.Data.Value)
	assert.ErrorIs(t, out.Err, fetchErr)
}

func TestRunFetchFailureWithoutCacheIsHardFailure(t *testing.T) {
	store := cache.New(t.TempDir(), time.Hour)

	fetchErr := errors.New("no route to host")
	out := Run(context.Background(), store, "k", func(context.Context) (record, error) {
		return record{}, fetchErr
	})

	assert.Equal(t, StateHardFailure, out.State)
	assert.ErrorIs(t, out.Err, fetchErr)
	assert.Zero(t, out.Data)
}

func TestRunSingleFetchAttempt(t *testing.T) {
	store := cache.New(t.TempDir(), time.Hour)

	calls := 0
	Run(context.Background(), store, "k", func(context.Context) (record, error) {
		calls++
		return record{}, errors.New("boom")
	})

	assert.Equal(t, 1, calls)
}

func TestRunIgnoresCacheWriteFailure(t *testing.T) {
	// A store pointed at a missing directory cannot save, but the fetched
	// data is still returned as fresh.
	store := cache.New("/nonexistent/statbar-cache-dir", time.Hour)

	out := Run(context.Background(), store, "k", func(context.Context) (record, error) {
		return record{Value: "live"}, nil
	})

	assert.Equal(t, StateFresh, out.State)
	assert.Equal(t, "live", out.Data.Value)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "fresh", StateFresh.String())
	assert.Equal(t, "stale_fallback", StateStaleFallback.String())
	assert.Equal(t, "hard_failure", StateHardFailure.String())
}
