// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Sentinel values substituted when an expected listing-page element is
// absent, so partial extraction failures still yield a full row.
const (
	NoTitle = "No Title"
	NoURL   = "No URL"
)

// PaperRecord holds the metadata extracted for one paper from a
// conference listing page.
type PaperRecord struct {
	// Conference is the venue acronym (e.g. "EMNLP").
	Conference string `json:"conference" yaml:"conference"`

	// Year is the edition year the listing page covers.
	Year int `json:"year" yaml:"year"`

	// Title is the paper title, or the NoTitle sentinel.
	Title string `json:"title" yaml:"title"`

	// CodeAvailable reports whether the entry's first link text matched
	// the code-availability heuristic.
	CodeAvailable bool `json:"code_available" yaml:"code_available"`

	// URL is the absolute paper URL, or the NoURL sentinel.
	URL string `json:"url" yaml:"url"`
}
