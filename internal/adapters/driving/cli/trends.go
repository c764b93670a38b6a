package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/internal/core/domain"
)

var (
	trendsFilters  filterFlags
	trendsBucket   string
	trendsKeywords []string
	trendsJSON     bool
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Posting activity over time",
	Long: `Prints post counts per time bucket for the filtered corpus.

With --track, additionally prints a per-keyword series so the spread
of specific terms can be followed over time.`,
	RunE: runTrends,
}

func init() {
	trendsFilters.register(trendsCmd)
	trendsCmd.Flags().StringVarP(&trendsBucket, "bucket", "b", "day", "time bucket: hour, day, week or month")
	trendsCmd.Flags().StringSliceVar(&trendsKeywords, "track", nil, "keywords to track over time")
	trendsCmd.Flags().BoolVar(&trendsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}

	posts, err := trendsFilters.filteredPosts(cmd)
	if err != nil {
		return err
	}

	bucket, err := parseBucket(trendsBucket)
	if err != nil {
		return err
	}

	series := analyticsService.TimeSeries(posts, bucket)

	if trendsJSON {
		out := map[string]any{"series": series}
		if len(trendsKeywords) > 0 {
			out["keywords"] = analyticsService.KeywordSeries(posts, trendsKeywords, bucket)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal trends: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(series) == 0 {
		cmd.Println("No posts match the current filters.")
		return nil
	}

	layout := bucketLayout(bucket)

	cmd.Printf("Posts per %s\n", trendsBucket)
	cmd.Println(strings.Repeat("=", len("Posts per ")+len(trendsBucket)))
	maxCount := 0
	for _, pt := range series {
		if pt.PostCount > maxCount {
			maxCount = pt.PostCount
		}
	}
	for _, pt := range series {
		cmd.Printf("  %s %5d %s\n", pt.Date.Format(layout), pt.PostCount, countBar(pt.PostCount, maxCount))
	}

	if len(trendsKeywords) > 0 {
		cmd.Println()
		cmd.Println("Keyword Trends")
		cmd.Println("==============")
		for _, pt := range analyticsService.KeywordSeries(posts, trendsKeywords, bucket) {
			cmd.Printf("  %s %-16s %d\n", pt.Date.Format(layout), pt.Keyword, pt.Count)
		}
	}

	return nil
}

func bucketLayout(bucket domain.TimeBucket) string {
	if bucket == domain.BucketHour {
		return "2006-01-02 15:00"
	}
	return "2006-01-02"
}
