// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/anthology-trends/pkg/types"
)

func TestAggregate(t *testing.T) {
	records := []types.PaperRecord{
		{Conference: "EMNLP", Year: 2020, Title: "A", CodeAvailable: true, URL: "url1"},
		{Conference: "EMNLP", Year: 2020, Title: "B", CodeAvailable: false, URL: "url2"},
		{Conference: "EMNLP", Year: 2021, Title: "C", CodeAvailable: true, URL: "url3"},
	}

	points := Aggregate(records)
	want := []TrendPoint{
		{Conference: "EMNLP", Year: 2020, Papers: 2, CodeAvailablePct: 50.0},
		{Conference: "EMNLP", Year: 2021, Papers: 1, CodeAvailablePct: 100.0},
	}
	assert.Equal(t, want, points)
}

func TestAggregateIdempotent(t *testing.T) {
	records := []types.PaperRecord{
		{Conference: "ACL", Year: 2019, CodeAvailable: true},
		{Conference: "ACL", Year: 2019, CodeAvailable: false},
		{Conference: "NAACL", Year: 2019, CodeAvailable: false},
		{Conference: "ACL", Year: 2020, CodeAvailable: true},
	}

	first := Aggregate(records)
	second := Aggregate(records)
	assert.Equal(t, first, second)
}

func TestAggregateOrdering(t *testing.T) {
	records := []types.PaperRecord{
		{Conference: "NAACL", Year: 2021},
		{Conference: "ACL", Year: 2022},
		{Conference: "ACL", Year: 2020},
		{Conference: "EMNLP", Year: 2019},
	}

	points := Aggregate(records)
	require.Len(t, points, 4)
	assert.Equal(t, "ACL", points[0].Conference)
	assert.Equal(t, 2020, points[0].Year)
	assert.Equal(t, "ACL", points[1].Conference)
	assert.Equal(t, 2022, points[1].Year)
	assert.Equal(t, "EMNLP", points[2].Conference)
	assert.Equal(t, "NAACL", points[3].Conference)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestAggregateBounds(t *testing.T) {
	tests := []struct {
		name string
		code []bool
		want float64
	}{
		{"all with code", []bool{true, true, true}, 100.0},
		{"none with code", []bool{false, false}, 0.0},
		{"one of three", []bool{true, false, false}, 100.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []types.PaperRecord
			for _, c := range tt.code {
				records = append(records, types.PaperRecord{Conference: "ACL", Year: 2020, CodeAvailable: c})
			}
			points := Aggregate(records)
			require.Len(t, points, 1)
			if points[0].CodeAvailablePct != tt.want {
				t.Errorf("CodeAvailablePct = %v, want %v", points[0].CodeAvailablePct, tt.want)
			}
		})
	}
}

func TestFormatTable(t *testing.T) {
	points := []TrendPoint{
		{Conference: "EMNLP", Year: 2020, Papers: 2, CodeAvailablePct: 50.0},
	}

	var buf bytes.Buffer
	FormatTable(points, &buf)
	assert.Contains(t, buf.String(), "EMNLP")
	assert.Contains(t, buf.String(), "50.0%")
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	assert.Contains(t, buf.String(), "No records found.")
}

func TestFormatJSON(t *testing.T) {
	points := []TrendPoint{
		{Conference: "EMNLP", Year: 2021, Papers: 1, CodeAvailablePct: 100.0},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatJSON(points, &buf))

	var decoded []TrendPoint
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, points, decoded)
}
