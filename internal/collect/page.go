// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect scrapes ACL Anthology listing pages into paper records.
// One listing page exists per (conference, year) pair; each page yields zero
// or more records. Transport and structural failures are never fatal to a
// run: a failed pair degrades to zero records and a diagnostic notice, and a
// missing element degrades to a sentinel field value.
package collect

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/anthology-trends/pkg/types"
)

// listingBase is the ACL Anthology origin. Declared as a var so tests can
// substitute an httptest server.
var listingBase = "https://aclanthology.org"

// Listing-page structure markers. One paragraph per paper, with the title
// in a nested span and at least one anchor carrying the paper link.
const (
	entrySelector = "p.d-sm-flex.align-items-stretch"
	titleSelector = "span.d-block"
)

// codeMarker is the code-availability heuristic: a paper counts as having
// released code iff its entry's first link text contains this substring.
// The match is exact and case-sensitive; known false negatives (e.g. a
// lowercase "code") are part of the heuristic's behavior.
const codeMarker = "Code"

// ListingURL returns the listing-page URL for one (conference, year) pair.
func ListingURL(conference string, year int) string {
	return fmt.Sprintf("%s/events/%s/%d/", listingBase, strings.ToLower(conference), year)
}

// FetchPage retrieves and parses one listing page. A non-200 status or
// transport error is returned to the caller; the run loop converts it into
// a skipped pair. There is no retry.
func FetchPage(ctx context.Context, client *http.Client, conference string, year int, cfg types.CollectorConfig) ([]types.PaperRecord, error) {
	url := ListingURL(conference, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	return parseListing(doc, conference, year), nil
}

// parseListing scans the document for paper entries and builds one record
// per entry. Missing elements degrade per-field: absent title span yields
// the NoTitle sentinel, absent anchor yields CodeAvailable=false and the
// NoURL sentinel. A page with no entries yields no records.
func parseListing(doc *goquery.Document, conference string, year int) []types.PaperRecord {
	var records []types.PaperRecord
	doc.Find(entrySelector).Each(func(_ int, entry *goquery.Selection) {
		rec := types.PaperRecord{
			Conference: conference,
			Year:       year,
			Title:      types.NoTitle,
			URL:        types.NoURL,
		}

		if title := strings.TrimSpace(entry.Find(titleSelector).First().Text()); title != "" {
			rec.Title = title
		}

		link := entry.Find("a").First()
		if link.Length() > 0 {
			rec.CodeAvailable = strings.Contains(link.Text(), codeMarker)
			if href, ok := link.Attr("href"); ok {
				rec.URL = listingBase + href
			}
		}

		records = append(records, rec)
	})
	return records
}
