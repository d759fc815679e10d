// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one cache-backed fetch: serve a fresh cache entry
// if one exists, otherwise make a single live fetch attempt and write the
// result through the cache. When the live fetch fails, an expired cache
// entry is pressed back into service rather than showing nothing.
package pipeline

import (
	"context"

	"github.com/hwu/statbar/internal/cache"
)

// State classifies how the returned data was obtained.
type State int

const (
	// StateFresh means live data or a cache entry inside its window.
	StateFresh State = iota

	// StateStaleFallback means the live fetch failed and an expired cache
	// entry was served instead.
	StateStaleFallback

	// StateHardFailure means the live fetch failed and no cache entry of
	// any age was available.
	StateHardFailure
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateStaleFallback:
		return "stale_fallback"
	case StateHardFailure:
		return "hard_failure"
	default:
		return "unknown"
	}
}

// Outcome is the exhaustive result of a Run: data plus how it was obtained.
// Err is the fetch error and is set exactly when State is not StateFresh.
type Outcome[T any] struct {
	Data  T
	State State
	Err   error

	// Live is true when the data came from a fetch this invocation rather
	// than from the cache. Snapshot recording keys off this so cache hits
	// do not produce duplicate history rows.
	Live bool
}

// Run tries the cache, then the fetcher, then the stale cache. The fetcher
// gets one attempt; there is no retry. A failed cache write is ignored,
// since caching is an optimization and the fetched data is already in hand.
func Run[T any](ctx context.Context, store *cache.Store, key string, fetch func(context.Context) (T, error)) Outcome[T] {
	var cached T
	if store.Load(key, &cached) {
		return Outcome[T]{Data: cached, State: StateFresh}
	}

	data, err := fetch(ctx)
	if err == nil {
		_ = store.Save(key, data)
		return Outcome[T]{Data: data, State: StateFresh, Live: true}
	}

	var stale T
	if store.LoadStale(key, &stale) {
		return Outcome[T]{Data: stale, State: StateStaleFallback, Err: err}
	}

	return Outcome[T]{State: StateHardFailure, Err: err}
}
