// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report aggregates collected paper records into per-conference
// code-availability trends and renders them.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/anthology-trends/pkg/types"
)

// TrendPoint is the aggregate for one observed (conference, year) pair.
type TrendPoint struct {
	Conference       string  `json:"conference"`
	Year             int     `json:"year"`
	Papers           int     `json:"papers"`
	CodeAvailablePct float64 `json:"code_available_pct"`
}

// Aggregate groups records by (conference, year) and computes the
// percentage of records with code available, in [0, 100]. Only pairs
// observed in the data appear in the result; a pair that yielded zero
// records is absent. Points are ordered by conference, then year, so the
// same input always produces the same output.
func Aggregate(records []types.PaperRecord) []TrendPoint {
	type key struct {
		conference string
		year       int
	}
	type group struct {
		papers   int
		withCode int
	}

	groups := make(map[key]*group)
	for _, r := range records {
		k := key{r.Conference, r.Year}
		g, ok := groups[k]
		if !ok {
			g = &group{}
			groups[k] = g
		}
		g.papers++
		if r.CodeAvailable {
			g.withCode++
		}
	}

	points := make([]TrendPoint, 0, len(groups))
	for k, g := range groups {
		points = append(points, TrendPoint{
			Conference:       k.conference,
			Year:             k.year,
			Papers:           g.papers,
			CodeAvailablePct: float64(g.withCode) / float64(g.papers) * 100,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Conference != points[j].Conference {
			return points[i].Conference < points[j].Conference
		}
		return points[i].Year < points[j].Year
	})
	return points
}

// FormatTable writes points as a human-readable table to w.
func FormatTable(points []TrendPoint, w io.Writer) {
	if len(points) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}

	fmt.Fprintf(w, "%-12s  %-4s  %-6s  %s\n", "Conference", "Year", "Papers", "Code available")
	fmt.Fprintln(w, strings.Repeat("-", 44))
	for _, p := range points {
		fmt.Fprintf(w, "%-12s  %-4d  %-6d  %.1f%%\n", p.Conference, p.Year, p.Papers, p.CodeAvailablePct)
	}
}

// FormatJSON writes points as indented JSON to w.
func FormatJSON(points []TrendPoint, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(points)
}
