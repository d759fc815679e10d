package types

import "time"

// HTTPConfig holds shared HTTP settings used by fetchers that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "statbar/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GitHubConfig holds settings for the GitHub status pipeline.
type GitHubConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL overrides the GitHub API root, for GitHub Enterprise hosts.
	// Empty means the public api.github.com.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Username is the GitHub account to report on.
	Username string `json:"username" yaml:"username"`

	// Token is an optional personal access token sent as
	// "Authorization: token <Token>". Unauthenticated requests work but
	// hit much lower rate limits.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// MonitoredRepos lists repositories to report individually,
	// in "owner/repo" form.
	MonitoredRepos []string `json:"monitored_repos" yaml:"monitored_repos"`

	// CacheDir is the directory holding the cache file for this source.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`

	// CacheWindow is how long a cached result stays fresh (default 1h,
	// matching the host's refresh interval).
	CacheWindow time.Duration `json:"cache_window" yaml:"cache_window"`
}

// ScholarConfig holds settings for the Google Scholar citation pipeline.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL overrides the SerpAPI endpoint. Empty means serpapi.com.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// AuthorID is the Google Scholar profile ID.
	AuthorID string `json:"author_id" yaml:"author_id"`

	// APIKey is the SerpAPI key sent as the api_key query parameter.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// CacheDir is the directory holding the cache file for this source.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`

	// CacheWindow is how long a cached result stays fresh (default 4h).
	CacheWindow time.Duration `json:"cache_window" yaml:"cache_window"`
}

// HistoryConfig holds settings for the snapshot history store.
type HistoryConfig struct {
	// DBPath is the SQLite database file path. Empty disables recording.
	DBPath string `json:"db_path" yaml:"db_path"`
}
