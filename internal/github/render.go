// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package github

import (
	"fmt"
	"time"

	"github.com/hwu/statbar/internal/menu"
	"github.com/hwu/statbar/pkg/types"
)

// Render builds the normal dropdown for a fresh record. now is used for
// the relative timestamps on star events.
func Render(s types.GitHubStats, now time.Time) *menu.Menu {
	m := &menu.Menu{}
	m.Add(menu.Line{
		Text:  fmt.Sprintf("⭐ %s: %d", s.Name, s.StarsReceived),
		Color: "#6e5494",
		Size:  14,
	})
	m.Separator()
	m.Add(menu.Line{
		Text:  fmt.Sprintf("👤 %s (@%s)", s.Name, s.Username),
		Color: "#000000",
		Size:  14,
	})
	m.Separator()
	m.Addf("📊 GitHub Statistics:")
	m.Add(menu.Line{Text: fmt.Sprintf("⭐ Total Stars Received: %d", s.StarsReceived), Color: "#E3B341"})
	m.Add(menu.Line{Text: fmt.Sprintf("👥 Followers: %d", s.Followers), Color: "#6e5494"})
	m.Add(menu.Line{Text: fmt.Sprintf("🗂 Public Repositories: %d", s.PublicRepos), Color: "#238636"})
	m.Separator()
	m.Addf("📌 Monitored Repositories:")
	for _, r := range s.MonitoredRepos {
		m.Add(menu.Line{
			Text:  fmt.Sprintf("• %s: ⭐ %d", r.Name, r.Stars),
			Color: "#0969DA",
			Href:  r.URL,
		})
	}

	if len(s.RecentStars) > 0 {
		m.Separator()
		m.Addf("🔔 Recently Starred by People You Follow:")
		for _, ev := range s.RecentStars {
			m.Add(menu.Line{
				Text:  fmt.Sprintf("• %s → %s (%s)", ev.Actor, ev.RepoName, relTime(ev.Time, now)),
				Color: "#0969DA",
				Href:  ev.RepoURL,
			})
		}
	}

	m.Separator()
	m.Add(menu.Line{Text: "🕒 Last Updated: " + s.LastUpdated, Color: "#7F7F7F", Size: 12})
	m.Separator()
	m.Add(menu.Line{Text: "🔍 View Profile", Href: "https://github.com/" + s.Username})
	m.Separator()
	m.Add(menu.Line{Text: "🔄 Refresh Data", Refresh: true})
	return m
}

// RenderCached builds the degraded view served when the live fetch failed
// but a cache entry of some age exists: a marked status line, a warning,
// the full cached dropdown, and the fetch error at the end.
func RenderCached(s types.GitHubStats, now time.Time, fetchErr error) *menu.Menu {
	m := &menu.Menu{}
	m.Add(menu.Line{
		Text:  fmt.Sprintf("⭐ %s: %d (cached)", s.Name, s.StarsReceived),
		Color: "#F4B400",
		Size:  14,
	})
	m.Separator()
	m.Add(menu.Line{Text: "⚠️ Using cached data", Color: "#F4B400"})
	for _, l := range Render(s, now).Lines() {
		m.Add(l)
	}
	m.Separator()
	m.Add(menu.Line{Text: fmt.Sprintf("❌ Error: %v", fetchErr), Color: "#DB4437"})
	return m
}

// RenderFailure builds the minimal view shown when there is no data at
// all, with a retry affordance.
func RenderFailure(fetchErr error) *menu.Menu {
	m := &menu.Menu{}
	m.Add(menu.Line{Text: "❌ GitHub", Color: "red"})
	m.Separator()
	m.Add(menu.Line{Text: fmt.Sprintf("API Error: %v", fetchErr), Color: "#DB4437"})
	m.Add(menu.Line{Text: "Please check your configuration and network", Color: "#7F7F7F"})
	m.Separator()
	m.Add(menu.Line{Text: "🔄 Try Again", Refresh: true})
	return m
}

// relTime renders a GitHub event timestamp as a coarse age ("3d ago").
// Unparseable timestamps are shown as-is.
func relTime(stamp string, now time.Time) string {
	t, err := time.Parse("2006-01-02T15:04:05Z", stamp)
	if err != nil {
		return stamp
	}
	d := now.Sub(t)
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours())/24)
	case d >= time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
}
