package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	contribFilters filterFlags
	contribLimit   int
	contribJSON    bool
)

var contributorsCmd = &cobra.Command{
	Use:   "contributors",
	Short: "Most active authors",
	Long: `Ranks authors in the filtered corpus by post count, with their
average score, comment totals and share of all posts.`,
	RunE: runContributors,
}

func init() {
	contribFilters.register(contributorsCmd)
	contributorsCmd.Flags().IntVarP(&contribLimit, "limit", "n", 10, "maximum number of authors")
	contributorsCmd.Flags().BoolVar(&contribJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(contributorsCmd)
}

func runContributors(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}

	posts, err := contribFilters.filteredPosts(cmd)
	if err != nil {
		return err
	}

	contributors := analyticsService.TopContributors(posts, contribLimit)

	if contribJSON {
		data, err := json.MarshalIndent(contributors, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal contributors: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(contributors) == 0 {
		cmd.Println("No contributors found.")
		return nil
	}

	cmd.Println("Top Contributors")
	cmd.Println("================")
	cmd.Printf("  %-24s %6s %10s %10s %8s\n", "Author", "Posts", "Avg Score", "Comments", "Share")
	for _, c := range contributors {
		cmd.Printf("  %-24s %6d %10.2f %10d %7.2f%%\n",
			c.Author, c.PostCount, c.AvgScore, c.TotalComments, c.Percentage)
	}

	return nil
}
