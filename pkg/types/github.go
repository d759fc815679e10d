// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records and configuration structs shared by the
// statbar pipelines. Records are plain serializable values: the cache and
// history stores treat them as opaque payloads.
package types

// RepoStats is the per-repository slice of a monitored repository.
type RepoStats struct {
	// Name is the bare repository name (e.g. "statbar").
	Name string `json:"name" yaml:"name"`

	// FullName is the "owner/repo" form.
	FullName string `json:"full_name" yaml:"full_name"`

	// URL is the repository's HTML page.
	URL string `json:"url" yaml:"url"`

	Stars int `json:"stars" yaml:"stars"`
	Forks int `json:"forks" yaml:"forks"`
}

// StarEvent is one repository starred by someone the user follows.
type StarEvent struct {
	// Actor is the login of the user who starred the repository.
	Actor string `json:"actor" yaml:"actor"`

	// RepoName is the "owner/repo" form of the starred repository.
	RepoName string `json:"repo_name" yaml:"repo_name"`

	// RepoURL is the repository's HTML page.
	RepoURL string `json:"repo_url" yaml:"repo_url"`

	// Time is the event timestamp in GitHub's wire form
	// ("2006-01-02T15:04:05Z").
	Time string `json:"time" yaml:"time"`
}

// GitHubStats is the normalized result of one GitHub fetch. It is written
// to the cache wholesale and never patched in place.
type GitHubStats struct {
	Username    string `json:"username" yaml:"username"`
	Name        string `json:"name" yaml:"name"`
	AvatarURL   string `json:"avatar_url" yaml:"avatar_url"`
	Followers   int    `json:"followers" yaml:"followers"`
	Following   int    `json:"following" yaml:"following"`
	PublicRepos int    `json:"public_repos" yaml:"public_repos"`

	// StarsReceived is the sum of stargazer counts across the user's full
	// repository list.
	StarsReceived int `json:"stars_received" yaml:"stars_received"`

	MonitoredRepos []RepoStats `json:"monitored_repos" yaml:"monitored_repos"`

	// RecentStars holds up to five WatchEvents from the user's received
	// events feed.
	RecentStars []StarEvent `json:"recent_stars" yaml:"recent_stars"`

	// LastUpdated is the generation time, formatted "2006-01-02 15:04".
	LastUpdated string `json:"last_updated" yaml:"last_updated"`
}
