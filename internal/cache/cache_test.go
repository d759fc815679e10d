// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Stars int    `json:"stars"`
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir(), time.Hour)

	in := payload{Name: "octocat", Stars: 42}
	require.NoError(t, s.Save("github_cache_octocat", in))

	var out payload
	require.True(t, s.Load("github_cache_octocat", &out))
	assert.Equal(t, in, out)
}

func TestLoadHonorsExpirationWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		age       time.Duration
		wantFresh bool
	}{
		{"just written", 0, true},
		{"inside window", 59 * time.Minute, true},
		{"exactly at window", time.Hour, true},
		{"past window", time.Hour + time.Second, false},
		{"long expired", 48 * time.Hour, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(t.TempDir(), time.Hour)
			s.Now = fixedClock(now.Add(-tt.age))
			require.NoError(t, s.Save("k", payload{Name: "a"}))

			s.Now = fixedClock(now)
			var out payload
			assert.Equal(t, tt.wantFresh, s.Load("k", &out))

			// LoadStale ignores the window entirely.
			var stale payload
			require.True(t, s.LoadStale("k", &stale))
			assert.Equal(t, "a", stale.Name)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := New(t.TempDir(), time.Hour)

	var out payload
	assert.False(t, s.Load("nope", &out))
	assert.False(t, s.LoadStale("nope", &out))
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{{{{"},
		{"wrong shape", `[1,2,3]`},
		{"missing data field", `{"timestamp": 1700000000}`},
		{"null data", `{"timestamp": 1700000000, "data": null}`},
		{"empty file", ""},
		{"payload type mismatch", `{"timestamp": 1700000000, "data": "a string"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(t.TempDir(), 0)
			require.NoError(t, os.WriteFile(s.Path("k"), []byte(tt.content), 0o644))

			var out payload
			assert.False(t, s.Load("k", &out))
			assert.False(t, s.LoadStale("k", &out))
		})
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	s := New(t.TempDir(), time.Hour)

	require.NoError(t, s.Save("k", payload{Name: "first", Stars: 1}))
	require.NoError(t, s.Save("k", payload{Name: "second"}))

	var out payload
	require.True(t, s.Load("k", &out))
	assert.Equal(t, payload{Name: "second"}, out)
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does", "not", "exist"), time.Hour)
	assert.Error(t, s.Save("k", payload{Name: "a"}))
}

func TestPathSanitizesKey(t *testing.T) {
	s := New("/cache", time.Hour)
	assert.Equal(t, "/cache/a_b_c.json", s.Path("a/b:c"))
}

func TestReadsLegacyFractionalTimestamp(t *testing.T) {
	// Files written by earlier tooling carry a fractional epoch timestamp.
	s := New(t.TempDir(), time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Now = fixedClock(now)

	content := `{"timestamp": 1772366300.25, "data": {"name": "octocat", "stars": 3}}`
	require.NoError(t, os.WriteFile(s.Path("k"), []byte(content), 0o644))

	var out payload
	require.True(t, s.LoadStale("k", &out))
	assert.Equal(t, payload{Name: "octocat", Stars: 3}, out)
}

func TestDefaultDirCreatesUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := DefaultDir("github")
	assert.Equal(t, filepath.Join(home, ".github_cache"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
