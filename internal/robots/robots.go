// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package robots checks robots.txt compliance before listing-page fetches.
package robots

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/temoto/robotstxt"
)

// Checker fetches and caches per-host robots.txt data.
type Checker struct {
	cache     map[string]*robotstxt.RobotsData
	client    *http.Client
	userAgent string
}

// NewChecker returns a Checker that identifies itself with the product
// token of userAgent when matching robots.txt groups.
func NewChecker(client *http.Client, userAgent string) *Checker {
	return &Checker{
		cache:     make(map[string]*robotstxt.RobotsData),
		client:    client,
		userAgent: productToken(userAgent),
	}
}

// IsAllowed reports whether rawURL may be fetched. An unreachable or
// unparsable robots.txt allows by default; only an explicit disallow rule
// blocks a fetch.
func (c *Checker) IsAllowed(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	data, err := c.robotsData(ctx, parsed)
	if err != nil {
		return true
	}
	return data.TestAgent(parsed.Path, c.userAgent)
}

func (c *Checker) robotsData(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	if data, ok := c.cache[u.Host]; ok {
		return data, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching robots.txt: %w", err)
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parsing robots.txt: %w", err)
	}

	c.cache[u.Host] = data
	return data, nil
}

// productToken extracts the product name from a User-Agent string for
// robots.txt group matching (e.g. "Mozilla/5.0 (X11; ...)" -> "Mozilla").
func productToken(ua string) string {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return ua
	}
	return strings.Split(fields[0], "/")[0]
}
