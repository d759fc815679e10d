// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar fetches Google Scholar citation statistics for one
// author profile through SerpAPI's google_scholar_author engine.
package scholar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hwu/statbar/internal/httputil"
	"github.com/hwu/statbar/pkg/types"
)

// searchBase is the SerpAPI search endpoint. Declared as a var so tests
// can substitute an httptest server.
var searchBase = "https://serpapi.com/search"

// CacheKey returns the cache key for an author's citation record.
func CacheKey(authorID string) string {
	return "scholar_cache_" + authorID
}

// Client fetches citation data for one configured author.
type Client struct {
	HTTP *http.Client
	Cfg  types.ScholarConfig

	// Now stamps LastUpdated and selects the current year; nil means
	// time.Now.
	Now func() time.Time
}

// Fetch issues one SerpAPI query and normalizes the author profile into a
// ScholarStats record. Missing citation-table rows or graph years leave
// zero values rather than failing the fetch.
func (c *Client) Fetch(ctx context.Context) (types.ScholarStats, error) {
	params := url.Values{
		"engine":    {"google_scholar_author"},
		"author_id": {c.Cfg.AuthorID},
		"api_key":   {c.Cfg.APIKey},
	}

	base := c.Cfg.BaseURL
	if base == "" {
		base = searchBase
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return types.ScholarStats{}, fmt.Errorf("creating request: %w", err)
	}
	if c.Cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.Cfg.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return types.ScholarStats{}, fmt.Errorf("SerpAPI request: %w", err)
	}
	if err := httputil.CheckStatus(resp); err != nil {
		return types.ScholarStats{}, fmt.Errorf("SerpAPI: %w", err)
	}

	var sr serpResponse
	if err := httputil.DecodeJSON(resp, &sr); err != nil {
		return types.ScholarStats{}, err
	}

	// SerpAPI reports failures inside a 200 body.
	if sr.Error != "" {
		return types.ScholarStats{}, fmt.Errorf("SerpAPI error: %s", sr.Error)
	}

	now := c.now()
	s := types.ScholarStats{
		Name:        "Unknown",
		LastUpdated: now.Format("2006-01-02 15:04"),
	}
	if sr.Author.Name != "" {
		s.Name = sr.Author.Name
	}

	// The citation table rows arrive in a fixed order: citations,
	// h-index, i10-index.
	table := sr.CitedBy.Table
	if len(table) > 0 && table[0].Citations != nil {
		s.Citations = table[0].Citations.All
	}
	if len(table) > 1 && table[1].HIndex != nil {
		s.HIndex = table[1].HIndex.All
	}
	if len(table) > 2 && table[2].I10Index != nil {
		s.I10Index = table[2].I10Index.All
	}

	for _, year := range sr.CitedBy.Graph {
		if year.Year == now.Year() {
			s.CurrentYearCitations = year.Citations
			break
		}
	}

	return s, nil
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// SerpAPI JSON structures (google_scholar_author engine).
type serpResponse struct {
	Error   string     `json:"error"`
	Author  serpAuthor `json:"author"`
	CitedBy serpCited  `json:"cited_by"`
}

type serpAuthor struct {
	Name string `json:"name"`
}

type serpCited struct {
	Table []serpTableRow  `json:"table"`
	Graph []serpGraphYear `json:"graph"`
}

type serpTableRow struct {
	Citations *serpMetric `json:"citations"`
	HIndex    *serpMetric `json:"h_index"`
	I10Index  *serpMetric `json:"i10_index"`
}

type serpMetric struct {
	All int `json:"all"`
}

type serpGraphYear struct {
	Year      int `json:"year"`
	Citations int `json:"citations"`
}
