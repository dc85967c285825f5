package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests. A
	// browser-like value reduces the chance of basic bot filtering
	// rejecting the listing-page requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CollectorConfig holds settings for the collect stage. The conference set
// and year range are declarative configuration rather than inlined control
// flow, so extending coverage needs no code change.
type CollectorConfig struct {
	HTTPConfig `yaml:",inline"`

	// Conferences is the closed set of venue acronyms to scrape.
	Conferences []string `json:"conferences" yaml:"conferences"`

	// FromYear and ToYear bound the contiguous, inclusive year range.
	FromYear int `json:"from_year" yaml:"from_year"`
	ToYear   int `json:"to_year" yaml:"to_year"`

	// OutputPath is where the CSV table is written, overwritten in full
	// on each run.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// RequestsPerSecond caps outbound request rate. Zero or negative
	// disables pacing.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// RespectRobots enables a robots.txt check before each listing fetch.
	RespectRobots bool `json:"respect_robots" yaml:"respect_robots"`
}

// ReportConfig holds settings for the report stage.
type ReportConfig struct {
	// InputPath is the CSV table produced by the collect stage.
	InputPath string `json:"input_path" yaml:"input_path"`

	// ChartPath is where the HTML line chart is rendered. Empty skips
	// chart rendering.
	ChartPath string `json:"chart_path" yaml:"chart_path"`
}

// ArchiveConfig holds settings for the archive stage.
type ArchiveConfig struct {
	// DBPath is the SQLite database accumulating records across runs.
	DBPath string `json:"db_path" yaml:"db_path"`
}
