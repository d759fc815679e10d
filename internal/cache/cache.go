// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache is a file-per-key JSON cache with time-based expiration.
//
// Each entry is one file holding {"timestamp": <epoch seconds>, "data": <payload>}.
// The payload is opaque: callers hand in any JSON-serializable value and get
// it back unchanged. Every failure path on the read side collapses to a cache
// miss, and writes are best-effort; the cache can never make a pipeline fail.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store reads and writes cache entries under a single directory. The zero
// Window means entries never expire on Load.
type Store struct {
	// Dir is the cache directory. It must exist; see DefaultDir.
	Dir string

	// Window is how long an entry stays fresh after it is written.
	Window time.Duration

	// Now returns the current time. Tests inject a fixed clock; a nil Now
	// means time.Now.
	Now func() time.Time
}

// New returns a Store over dir with the given expiration window.
func New(dir string, window time.Duration) *Store {
	return &Store{Dir: dir, Window: window}
}

// entry is the on-disk schema. Timestamp is the write time in epoch
// seconds, kept fractional for compatibility with files written by other
// tooling.
type entry struct {
	Timestamp float64         `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Load reads the entry for key into v. It returns false when the file is
// absent, unreadable, malformed, missing its payload, or older than the
// expiration window. It never returns an error: a bad cache is a missing
// cache.
func (s *Store) Load(key string, v any) bool {
	return s.load(key, v, true)
}

// LoadStale is Load without the expiration check. It exists for the
// fallback path after a live fetch has failed, where stale data beats no
// data. Absent or corrupt files still miss.
func (s *Store) LoadStale(key string, v any) bool {
	return s.load(key, v, false)
}

func (s *Store) load(key string, v any, honorWindow bool) bool {
	raw, err := os.ReadFile(s.Path(key))
	if err != nil {
		return false
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return false
	}
	// An absent "data" field decodes to an empty RawMessage, but a JSON
	// null survives as the literal bytes. Both mean there is no payload.
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return false
	}

	if honorWindow && s.Window > 0 {
		age := s.now().Sub(time.Unix(int64(e.Timestamp), 0))
		if age > s.Window {
			return false
		}
	}

	return json.Unmarshal(e.Data, v) == nil
}

// Save serializes {timestamp: now, data: v} to the key's file, replacing
// any previous entry wholesale. The write goes through a temporary file and
// a rename so concurrent readers see either the old entry or the new one.
// Callers treat a returned error as a skipped optimization, not a failure.
func (s *Store) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling cache payload: %w", err)
	}

	out, err := json.Marshal(entry{
		Timestamp: float64(s.now().Unix()),
		Data:      raw,
	})
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}

	path := s.Path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing cache file: %w", err)
	}
	return nil
}

// Path returns the file backing key, with filesystem-unsafe characters
// replaced.
func (s *Store) Path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(key)
	return filepath.Join(s.Dir, safe+".json")
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// DefaultDir returns ~/.<source>_cache, creating it if needed. When the
// home-relative directory cannot be created it falls back to the shared
// temp directory, matching where previous installs may have left entries.
func DefaultDir(source string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	dir := filepath.Join(home, "."+source+"_cache")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return os.TempDir()
	}
	return dir
}
