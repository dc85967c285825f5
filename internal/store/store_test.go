// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/anthology-trends/internal/report"
	"github.com/pdiddy/anthology-trends/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "anthology.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestIngestAndTrends(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	records := []types.PaperRecord{
		{Conference: "EMNLP", Year: 2020, Title: "A", CodeAvailable: true, URL: "url1"},
		{Conference: "EMNLP", Year: 2020, Title: "B", CodeAvailable: false, URL: "url2"},
		{Conference: "EMNLP", Year: 2021, Title: "C", CodeAvailable: true, URL: "url3"},
	}

	n, err := s.Ingest(ctx, records, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	points, err := s.Trends(ctx)
	require.NoError(t, err)
	want := []report.TrendPoint{
		{Conference: "EMNLP", Year: 2020, Papers: 2, CodeAvailablePct: 50.0},
		{Conference: "EMNLP", Year: 2021, Papers: 1, CodeAvailablePct: 100.0},
	}
	assert.Equal(t, want, points)
}

func TestIngestAccumulatesAcrossRuns(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run := []types.PaperRecord{
		{Conference: "ACL", Year: 2020, Title: "A", CodeAvailable: true},
	}

	_, err := s.Ingest(ctx, run, time.Now())
	require.NoError(t, err)
	_, err = s.Ingest(ctx, run, time.Now().Add(time.Hour))
	require.NoError(t, err)

	total, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	points, err := s.Trends(ctx)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 2, points[0].Papers)
	assert.Equal(t, 100.0, points[0].CodeAvailablePct)
}

func TestTrendsEmptyArchive(t *testing.T) {
	s := testStore(t)

	points, err := s.Trends(context.Background())
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestIngestEmpty(t *testing.T) {
	s := testStore(t)

	n, err := s.Ingest(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
