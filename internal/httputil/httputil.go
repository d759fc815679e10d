// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the statbar fetchers.
//
// Fetchers make exactly one attempt per request: the host re-runs the
// binary on its own schedule, so a failed invocation is retried by the next
// poll rather than by a backoff loop here.
package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Rate-limit headers as sent by the GitHub API.
const (
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// errBodyLimit caps how much of an error response body is kept.
const errBodyLimit = 4 << 10

// NewClient returns an http.Client with the given request timeout. A
// timeout surfaces as an ordinary request error.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// RateLimitError reports that the API rejected the request because the
// request quota is exhausted.
type RateLimitError struct {
	// ResetAt is when the quota resets, parsed from the response header.
	// Zero when the header was absent or unparseable.
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "API rate limit exceeded"
	}
	return fmt.Sprintf("API rate limit exceeded, resets at %s", e.ResetAt.Format("15:04"))
}

// StatusError reports a non-2xx response that is not a rate-limit
// rejection.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// CheckStatus returns nil for a 2xx response. A 403 whose remaining-quota
// header reads zero becomes a *RateLimitError; any other non-2xx status
// becomes a *StatusError carrying a bounded copy of the body. On a non-nil
// return the body has been consumed and closed.
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden && resp.Header.Get(headerRateLimitRemaining) == "0" {
		io.Copy(io.Discard, resp.Body)
		var resetAt time.Time
		if secs, err := strconv.ParseInt(resp.Header.Get(headerRateLimitReset), 10, 64); err == nil {
			resetAt = time.Unix(secs, 0)
		}
		return &RateLimitError{ResetAt: resetAt}
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
	return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
}

// DecodeJSON decodes the response body into v and closes it.
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}
	return nil
}
