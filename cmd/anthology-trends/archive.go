package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/anthology-trends/internal/report"
	"github.com/pdiddy/anthology-trends/internal/store"
	"github.com/pdiddy/anthology-trends/internal/table"
)

const defaultDBPath = "archive/anthology.db"

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Accumulate collected records in a SQLite database",
	Long: `Archive manages a local SQLite database of collected records. Unlike the
CSV table, which each collect run replaces, the archive is additive: ingest
appends a run's records, and trends computes code-availability percentages
over everything archived so far.`,
}

// --- ingest subcommand ---

var archiveIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Append a collected CSV table to the archive",
	RunE:  runArchiveIngest,
}

func runArchiveIngest(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	dbPath, _ := cmd.Flags().GetString("db")

	records, err := table.Read(input)
	if err != nil {
		return err
	}

	s, err := store.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.Ingest(context.Background(), records, time.Now())
	if err != nil {
		return err
	}

	total, err := s.Count(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Archived %d records from %s (%d total in %s)\n", n, input, total, dbPath)
	return nil
}

// --- trends subcommand ---

var archiveTrendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Compute code-availability trends over the archive",
	RunE:  runArchiveTrends,
}

func runArchiveTrends(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")

	s, err := store.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	points, err := s.Trends(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return report.FormatJSON(points, os.Stdout)
	}
	report.FormatTable(points, os.Stdout)
	return nil
}

func init() {
	archiveIngestCmd.Flags().String("input", defaultOutput, "path of the collected CSV table")
	archiveIngestCmd.Flags().String("db", defaultDBPath, "path of the archive database")

	archiveTrendsCmd.Flags().String("db", defaultDBPath, "path of the archive database")
	archiveTrendsCmd.Flags().Bool("json", false, "output trends as JSON")

	archiveCmd.AddCommand(archiveIngestCmd)
	archiveCmd.AddCommand(archiveTrendsCmd)
	rootCmd.AddCommand(archiveCmd)
}
