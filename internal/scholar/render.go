// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"

	"github.com/hwu/statbar/internal/menu"
	"github.com/hwu/statbar/pkg/types"
)

// Render builds the normal dropdown for a fresh record.
func Render(s types.ScholarStats, authorID string) *menu.Menu {
	m := &menu.Menu{}
	m.Add(menu.Line{
		Text:  fmt.Sprintf("📚 %s: %d", s.Name, s.Citations),
		Color: "#4285F4",
		Size:  14,
	})
	m.Separator()
	m.Add(menu.Line{Text: "👤 " + s.Name, Color: "#000000", Size: 14})
	m.Separator()
	m.Addf("📊 Citation Statistics:")
	m.Add(menu.Line{Text: fmt.Sprintf("Total Citations: %d", s.Citations), Color: "#0F9D58"})
	m.Add(menu.Line{Text: fmt.Sprintf("Citations This Year: %d", s.CurrentYearCitations), Color: "#F4B400"})
	m.Add(menu.Line{Text: fmt.Sprintf("h-index: %d", s.HIndex), Color: "#DB4437"})
	m.Add(menu.Line{Text: fmt.Sprintf("i10-index: %d", s.I10Index), Color: "#4285F4"})
	m.Separator()
	m.Add(menu.Line{Text: "🕒 Last Updated: " + s.LastUpdated, Color: "#7F7F7F", Size: 12})
	m.Separator()
	m.Add(menu.Line{
		Text: "🔍 View on Google Scholar",
		Href: "https://scholar.google.com/citations?user=" + authorID,
	})
	m.Separator()
	m.Add(menu.Line{Text: "🔄 Refresh Data", Refresh: true})
	return m
}

// RenderCached builds the degraded view for a stale cache entry served
// after a failed live fetch.
func RenderCached(s types.ScholarStats, authorID string, fetchErr error) *menu.Menu {
	m := &menu.Menu{}
	m.Add(menu.Line{
		Text:  fmt.Sprintf("👤 %s: 📚 %d (cached)", s.Name, s.Citations),
		Color: "#F4B400",
		Size:  14,
	})
	m.Separator()
	m.Add(menu.Line{Text: "⚠️ Using cached data", Color: "#F4B400"})
	for _, l := range Render(s, authorID).Lines() {
		m.Add(l)
	}
	m.Separator()
	m.Add(menu.Line{Text: fmt.Sprintf("❌ Error: %v", fetchErr), Color: "#DB4437"})
	return m
}

// RenderFailure builds the minimal no-data view with a retry affordance.
func RenderFailure(fetchErr error) *menu.Menu {
	m := &menu.Menu{}
	m.Add(menu.Line{Text: "❌ Error", Color: "red"})
	m.Separator()
	m.Add(menu.Line{Text: fmt.Sprintf("API Error: %v", fetchErr), Color: "#DB4437"})
	m.Add(menu.Line{Text: "Please Check Your Network", Color: "#7F7F7F"})
	m.Separator()
	m.Add(menu.Line{Text: "🔄 Try Again", Refresh: true})
	return m
}
