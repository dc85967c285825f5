// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderChart writes an interactive HTML line chart to path: x-axis years,
// y-axis code-availability percentage, one series per conference with a
// marker at each observed point. Years a conference has no data for render
// as gaps.
func RenderChart(points []TrendPoint, path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Code availability on the ACL Anthology",
			Subtitle: "share of papers with a released-code link, by conference and year",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "code available (%)"}),
	)

	years := distinctYears(points)
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	line.SetXAxis(labels)

	byPair := make(map[string]map[int]float64)
	var conferences []string
	for _, p := range points {
		if _, ok := byPair[p.Conference]; !ok {
			byPair[p.Conference] = make(map[int]float64)
			conferences = append(conferences, p.Conference)
		}
		byPair[p.Conference][p.Year] = p.CodeAvailablePct
	}
	sort.Strings(conferences)

	for _, conf := range conferences {
		data := make([]opts.LineData, len(years))
		for i, y := range years {
			if pct, ok := byPair[conf][y]; ok {
				data[i] = opts.LineData{Value: pct}
			} else {
				// "-" is the echarts token for a gap in a series.
				data[i] = opts.LineData{Value: "-"}
			}
		}
		line.AddSeries(conf, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file %s: %w", path, err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func distinctYears(points []TrendPoint) []int {
	seen := make(map[int]bool)
	var years []int
	for _, p := range points {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	sort.Ints(years)
	return years
}
