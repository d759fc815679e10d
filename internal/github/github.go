// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package github fetches a user's GitHub status: profile counters, total
// stars received across all repositories, a fixed set of monitored
// repositories, and recent stars by followed users.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hwu/statbar/internal/httputil"
	"github.com/hwu/statbar/pkg/types"
)

// apiBase is the GitHub REST API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.github.com"

const (
	// reposPageSize is the page size for the repository listing.
	reposPageSize = 100

	// eventsPageSize is the page size for the received-events feed.
	eventsPageSize = 30

	// maxRecentStars bounds the recent-activity slice.
	maxRecentStars = 5
)

// CacheKey returns the cache key for a username's status record.
func CacheKey(username string) string {
	return "github_cache_" + username
}

// Client fetches GitHub data for one configured user.
type Client struct {
	HTTP *http.Client
	Cfg  types.GitHubConfig

	// Now stamps LastUpdated; nil means time.Now.
	Now func() time.Time
}

// Fetch assembles one GitHubStats record. Requests are strictly
// sequential: user profile, full repository listing, monitored
// repositories, then the received-events feed.
func (c *Client) Fetch(ctx context.Context) (types.GitHubStats, error) {
	user, err := c.fetchUser(ctx)
	if err != nil {
		return types.GitHubStats{}, err
	}

	stars, err := c.fetchStarsReceived(ctx)
	if err != nil {
		return types.GitHubStats{}, err
	}

	monitored := c.fetchMonitoredRepos(ctx)

	recent, err := c.fetchRecentStars(ctx)
	if err != nil {
		return types.GitHubStats{}, err
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return types.GitHubStats{
		Username:       user.Login,
		Name:           name,
		AvatarURL:      user.AvatarURL,
		Followers:      user.Followers,
		Following:      user.Following,
		PublicRepos:    user.PublicRepos,
		StarsReceived:  stars,
		MonitoredRepos: monitored,
		RecentStars:    recent,
		LastUpdated:    c.now().Format("2006-01-02 15:04"),
	}, nil
}

// get issues one authenticated GET and checks the status. The caller owns
// the body on a nil error.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	base := c.Cfg.BaseURL
	if base == "" {
		base = apiBase
	}
	reqURL := base + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.Cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.Cfg.UserAgent)
	}
	if c.Cfg.Token != "" {
		req.Header.Set("Authorization", "token "+c.Cfg.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GitHub API request: %w", err)
	}
	if err := httputil.CheckStatus(resp); err != nil {
		return nil, fmt.Errorf("GitHub API: %w", err)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	resp, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	return httputil.DecodeJSON(resp, v)
}

func (c *Client) fetchUser(ctx context.Context) (githubUser, error) {
	var u githubUser
	err := c.getJSON(ctx, "/users/"+c.Cfg.Username, nil, &u)
	return u, err
}

// fetchStarsReceived pages the full repository listing and sums stargazer
// counts. Pages are requested from 1 upward until an empty page comes back.
func (c *Client) fetchStarsReceived(ctx context.Context) (int, error) {
	total := 0
	for page := 1; ; page++ {
		params := url.Values{
			"page":     {fmt.Sprintf("%d", page)},
			"per_page": {fmt.Sprintf("%d", reposPageSize)},
		}
		var repos []githubRepo
		if err := c.getJSON(ctx, "/users/"+c.Cfg.Username+"/repos", params, &repos); err != nil {
			return 0, err
		}
		if len(repos) == 0 {
			return total, nil
		}
		for _, r := range repos {
			total += r.StargazersCount
		}
	}
}

// fetchMonitoredRepos resolves each configured "owner/repo" entry. A repo
// that fails to resolve is skipped so one renamed or deleted repository
// does not take down the whole fetch; this best-effort policy is
// deliberate and unlogged.
func (c *Client) fetchMonitoredRepos(ctx context.Context) []types.RepoStats {
	var out []types.RepoStats
	for _, fullName := range c.Cfg.MonitoredRepos {
		fullName = strings.TrimSpace(fullName)
		if fullName == "" {
			continue
		}

		var r githubRepo
		if err := c.getJSON(ctx, "/repos/"+fullName, nil, &r); err != nil {
			continue
		}
		out = append(out, types.RepoStats{
			Name:     r.Name,
			FullName: r.FullName,
			URL:      r.HTMLURL,
			Stars:    r.StargazersCount,
			Forks:    r.ForksCount,
		})
	}
	return out
}

// fetchRecentStars reads the received-events feed and keeps the first
// maxRecentStars WatchEvents (a WatchEvent is a star).
func (c *Client) fetchRecentStars(ctx context.Context) ([]types.StarEvent, error) {
	params := url.Values{"per_page": {fmt.Sprintf("%d", eventsPageSize)}}
	var events []githubEvent
	if err := c.getJSON(ctx, "/users/"+c.Cfg.Username+"/received_events", params, &events); err != nil {
		return nil, err
	}

	var stars []types.StarEvent
	for _, ev := range events {
		if ev.Type != "WatchEvent" {
			continue
		}
		stars = append(stars, types.StarEvent{
			Actor:    ev.Actor.Login,
			RepoName: ev.Repo.Name,
			RepoURL:  "https://github.com/" + ev.Repo.Name,
			Time:     ev.CreatedAt,
		})
		if len(stars) >= maxRecentStars {
			break
		}
	}
	return stars, nil
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// GitHub API JSON structures.
type githubUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
}

type githubRepo struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
}

type githubEvent struct {
	Type  string `json:"type"`
	Actor struct {
		Login string `json:"login"`
	} `json:"actor"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
	CreatedAt string `json:"created_at"`
}
