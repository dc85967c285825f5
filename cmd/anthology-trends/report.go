package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/anthology-trends/internal/report"
	"github.com/pdiddy/anthology-trends/internal/table"
)

const defaultChart = "acl_conferences_code_availability.html"

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate the table and render the trend chart",
	Long: `Report reads the collected CSV table, computes the percentage of papers
with code available for every (conference, year) pair observed in the data,
prints the result as a table (or JSON with --json), and renders an
interactive HTML line chart with one series per conference.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("input", defaultOutput, "path of the collected CSV table")
	reportCmd.Flags().String("chart", defaultChart, "path of the HTML chart (empty skips rendering)")
	reportCmd.Flags().Bool("json", false, "output aggregates as JSON")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")

	records, err := table.Read(input)
	if err != nil {
		return err
	}
	points := report.Aggregate(records)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		if err := report.FormatJSON(points, os.Stdout); err != nil {
			return err
		}
	} else {
		report.FormatTable(points, os.Stdout)
	}

	chartPath, _ := cmd.Flags().GetString("chart")
	if chartPath != "" && len(points) > 0 {
		if err := report.RenderChart(points, chartPath); err != nil {
			return err
		}
		fmt.Printf("\nChart written to %s\n", chartPath)
	}
	return nil
}
