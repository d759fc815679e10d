// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu renders xbar plugin output: one line of text per menu row,
// optionally followed by "| key=value ..." parameters the host understands
// (color, size, href, refresh). A line of exactly "---" separates the
// status-bar text from the dropdown, and sections within the dropdown.
package menu

import (
	"fmt"
	"io"
	"strings"
)

// Line is one output row.
type Line struct {
	Text string

	// Color is a named or hex color (e.g. "#E3B341").
	Color string

	// Size is the font size; zero omits the parameter.
	Size int

	// Href makes the row a hyperlink when clicked.
	Href string

	// Refresh makes clicking the row re-run the plugin.
	Refresh bool
}

// String renders the line in xbar syntax.
func (l Line) String() string {
	var params []string
	if l.Color != "" {
		params = append(params, "color="+l.Color)
	}
	if l.Size > 0 {
		params = append(params, fmt.Sprintf("size=%d", l.Size))
	}
	if l.Href != "" {
		params = append(params, "href="+l.Href)
	}
	if l.Refresh {
		params = append(params, "refresh=true")
	}
	if len(params) == 0 {
		return l.Text
	}
	return l.Text + " | " + strings.Join(params, " ")
}

// Menu accumulates lines for one plugin invocation.
type Menu struct {
	lines []Line
}

// Add appends a line.
func (m *Menu) Add(l Line) {
	m.lines = append(m.lines, l)
}

// Addf appends a plain line with no parameters.
func (m *Menu) Addf(format string, args ...any) {
	m.Add(Line{Text: fmt.Sprintf(format, args...)})
}

// Lines returns the accumulated rows in order.
func (m *Menu) Lines() []Line {
	return m.lines
}

// Separator appends the "---" row.
func (m *Menu) Separator() {
	m.Add(Line{Text: "---"})
}

// WriteTo writes the rendered menu, one line per row.
func (m *Menu) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range m.lines {
		n, err := fmt.Fprintln(w, l.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the whole menu.
func (m *Menu) String() string {
	var b strings.Builder
	m.WriteTo(&b)
	return b.String()
}
