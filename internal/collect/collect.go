// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
	"golang.org/x/time/rate"

	"github.com/pdiddy/anthology-trends/internal/robots"
	"github.com/pdiddy/anthology-trends/pkg/types"
)

// Pair is one (conference, year) listing page to fetch.
type Pair struct {
	Conference string `yaml:"conference"`
	Year       int    `yaml:"year"`
}

// Pairs expands the configured cross-product in outer iteration order:
// conference first, then year ascending. This order also fixes the row
// order of the persisted table.
func Pairs(cfg types.CollectorConfig) []Pair {
	var pairs []Pair
	for _, conf := range cfg.Conferences {
		for year := cfg.FromYear; year <= cfg.ToYear; year++ {
			pairs = append(pairs, Pair{Conference: conf, Year: year})
		}
	}
	return pairs
}

// PairResult holds the outcome for one listing page: either its extracted
// records, or a skip with the reason. A pair with zero records and no skip
// simply had an empty listing.
type PairResult struct {
	Pair    Pair                `yaml:"pair"`
	Records []types.PaperRecord `yaml:"-"`
	Count   int                 `yaml:"records"`
	Skipped bool                `yaml:"skipped,omitempty"`
	Reason  string              `yaml:"reason,omitempty"`
}

// BatchResult summarizes one collect run.
type BatchResult struct {
	Fetched int
	Skipped int
	Results []PairResult
}

// Total returns the number of pairs processed.
func (r BatchResult) Total() int {
	return r.Fetched + r.Skipped
}

// Records concatenates all per-pair records in iteration order.
func (r BatchResult) Records() []types.PaperRecord {
	var all []types.PaperRecord
	for _, pr := range r.Results {
		all = append(all, pr.Records...)
	}
	return all
}

// Run fetches every configured pair sequentially, printing per-pair status
// to w. Failures never abort the run: a failed or robots-disallowed pair
// contributes zero records and a diagnostic line. The optional progress
// callback is invoked once per completed pair. Only the configured pairs
// are ever requested.
func Run(ctx context.Context, client *http.Client, cfg types.CollectorConfig, w io.Writer, progress func()) BatchResult {
	pairs := Pairs(cfg)

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	limiter := rate.NewLimiter(limit, 1)

	var checker *robots.Checker
	if cfg.RespectRobots {
		checker = robots.NewChecker(client, cfg.UserAgent)
	}

	var result BatchResult
	for _, pair := range pairs {
		pr := fetchPair(ctx, client, limiter, checker, pair, cfg, w)
		if pr.Skipped {
			result.Skipped++
		} else {
			result.Fetched++
		}
		result.Results = append(result.Results, pr)
		if progress != nil {
			progress()
		}
	}

	fmt.Fprintf(w, "\nCollect summary: %d pages fetched, %d skipped, %d records\n",
		result.Fetched, result.Skipped, len(result.Records()))
	return result
}

func fetchPair(ctx context.Context, client *http.Client, limiter *rate.Limiter, checker *robots.Checker, pair Pair, cfg types.CollectorConfig, w io.Writer) PairResult {
	pr := PairResult{Pair: pair}

	if err := limiter.Wait(ctx); err != nil {
		pr.Skipped = true
		pr.Reason = err.Error()
		fmt.Fprintf(w, "skipped: %s %d (%v)\n", pair.Conference, pair.Year, err)
		return pr
	}

	if checker != nil && !checker.IsAllowed(ctx, ListingURL(pair.Conference, pair.Year)) {
		pr.Skipped = true
		pr.Reason = "disallowed by robots.txt"
		fmt.Fprintf(w, "skipped: %s %d (disallowed by robots.txt)\n", pair.Conference, pair.Year)
		return pr
	}

	records, err := FetchPage(ctx, client, pair.Conference, pair.Year, cfg)
	if err != nil {
		pr.Skipped = true
		pr.Reason = err.Error()
		fmt.Fprintf(w, "skipped: %s %d (%v)\n", pair.Conference, pair.Year, err)
		return pr
	}

	pr.Records = records
	pr.Count = len(records)
	fmt.Fprintf(w, "fetched: %s %d (%d records)\n", pair.Conference, pair.Year, len(records))
	return pr
}

// RunSummary is the YAML sidecar written next to the table when requested.
type RunSummary struct {
	CollectedAt time.Time    `yaml:"collected_at"`
	Table       string       `yaml:"table"`
	Records     int          `yaml:"records"`
	Pairs       []PairResult `yaml:"pairs"`
}

// WriteSummary writes a YAML summary of the run to path.
func WriteSummary(path, tablePath string, result BatchResult) error {
	summary := RunSummary{
		CollectedAt: time.Now().UTC(),
		Table:       tablePath,
		Records:     len(result.Records()),
		Pairs:       result.Results,
	}
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run summary %s: %w", path, err)
	}
	return nil
}
