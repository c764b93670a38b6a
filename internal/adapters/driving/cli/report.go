package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/internal/adapters/driven/export"
)

var (
	reportFilters filterFlags
	reportDir     string
	reportStdout  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the summary report",
	Long: `Renders the plain-text analytics report for the filtered corpus:
summary statistics, top contributors, top keywords and network
statistics. By default the report is written to a timestamped file;
use --stdout to print it instead.`,
	RunE: runReport,
}

func init() {
	reportFilters.register(reportCmd)
	reportCmd.Flags().StringVarP(&reportDir, "out", "o", ".", "output directory")
	reportCmd.Flags().BoolVar(&reportStdout, "stdout", false, "print to stdout instead of a file")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}

	posts, err := reportFilters.filteredPosts(cmd)
	if err != nil {
		return err
	}

	report := buildReport(posts)

	if reportStdout {
		cmd.Println(report)
		return nil
	}

	path, err := export.NewExporter(reportDir).ExportReport(report)
	if err != nil {
		return err
	}

	cmd.Printf("Report written to %s\n", path)
	return nil
}
