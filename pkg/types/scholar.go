// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScholarStats is the normalized result of one Google Scholar fetch.
type ScholarStats struct {
	Name string `json:"name" yaml:"name"`

	// Citations is the all-time citation count.
	Citations int `json:"citations" yaml:"citations"`

	HIndex   int `json:"h_index" yaml:"h_index"`
	I10Index int `json:"i10_index" yaml:"i10_index"`

	// CurrentYearCitations is the citation count for the calendar year the
	// fetch ran in, taken from the profile's per-year graph.
	CurrentYearCitations int `json:"current_year_citations" yaml:"current_year_citations"`

	// LastUpdated is the generation time, formatted "2006-01-02 15:04".
	LastUpdated string `json:"last_updated" yaml:"last_updated"`
}
