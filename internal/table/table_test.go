// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/anthology-trends/pkg/types"
)

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{Conference: "EMNLP", Year: 2020, Title: "A", CodeAvailable: true, URL: "https://aclanthology.org/a/"},
		{Conference: "EMNLP", Year: 2020, Title: "B, with a comma", CodeAvailable: false, URL: "https://aclanthology.org/b/"},
		{Conference: "ACL", Year: 2021, Title: types.NoTitle, CodeAvailable: false, URL: types.NoURL},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	records := sampleRecords()

	require.NoError(t, Write(path, records))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWriteHeaderAndBooleans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, Write(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "conference,year,title,code_available,url", lines[0])
	assert.Contains(t, lines[1], ",true,")
	assert.Contains(t, lines[2], ",false,")
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, Write(path, sampleRecords()))
	require.NoError(t, Write(path, sampleRecords()[:1]))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, Write(path, nil))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"wrong header", "a,b,c,d,e\n", "expected column"},
		{"missing column", "conference,year,title,code_available\n", "expected 5 columns"},
		{"bad year", "conference,year,title,code_available,url\nACL,twenty,T,true,u\n", "parsing year"},
		{"bad bool", "conference,year,title,code_available,url\nACL,2020,T,maybe,u\n", "parsing code_available"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "table.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Read(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
