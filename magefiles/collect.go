//go:build mage

package main

import "github.com/magefile/mage/mg"

// Collect scrapes the configured listing pages into the CSV table.
func Collect() error {
	mg.Deps(Build)
	return run("collect", "--progress")
}

// Report aggregates the CSV table and renders the trend chart.
func Report() error {
	mg.Deps(Build)
	return run("report")
}

// Archive appends the current CSV table to the SQLite archive.
func Archive() error {
	mg.Deps(Build)
	return run("archive", "ingest")
}
