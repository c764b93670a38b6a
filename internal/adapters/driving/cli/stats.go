package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statsFilters filterFlags
	statsJSON    bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summary statistics for the corpus",
	Long: `Prints summary statistics for the filtered corpus: post and author
counts, score and comment totals, the covered date range and the
posting rhythm across the week.`,
	RunE: runStats,
}

func init() {
	statsFilters.register(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}

	posts, err := statsFilters.filteredPosts(cmd)
	if err != nil {
		return err
	}

	stats := analyticsService.Summary(posts)
	rhythm := analyticsService.WeeklyRhythm(posts)

	if statsJSON {
		out := map[string]any{
			"summary":       stats,
			"weekly_rhythm": rhythm,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Summary")
	cmd.Println("=======")
	cmd.Printf("  Total Posts:    %d\n", stats.TotalPosts)
	cmd.Printf("  Unique Authors: %d\n", stats.UniqueAuthors)
	cmd.Printf("  Platforms:      %d\n", stats.Platforms)
	cmd.Printf("  Average Score:  %.2f\n", stats.AvgScore)
	cmd.Printf("  Total Comments: %d\n", stats.TotalComments)
	cmd.Printf("  Date Range:     %s\n", stats.DateRange)
	cmd.Println()

	cmd.Println("Weekly Rhythm")
	cmd.Println("=============")
	maxCount := 0
	for _, row := range rhythm {
		if row.PostCount > maxCount {
			maxCount = row.PostCount
		}
	}
	for _, row := range rhythm {
		cmd.Printf("  %-9s %5d %s\n", row.Day, row.PostCount, countBar(row.PostCount, maxCount))
	}

	return nil
}

// countBar draws a proportional bar for terminal tables.
func countBar(count, maxCount int) string {
	const width = 30
	if maxCount <= 0 || count <= 0 {
		return ""
	}
	n := count * width / maxCount
	if n < 1 {
		n = 1
	}
	bar := make([]byte, n)
	for i := range bar {
		bar[i] = '#'
	}
	return string(bar)
}
