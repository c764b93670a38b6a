package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	keywordsFilters filterFlags
	keywordsLimit   int
	keywordsJSON    bool
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Most frequent keywords",
	Long: `Ranks keywords across the filtered corpus. Words shorter than three
characters and common stop words are excluded.`,
	RunE: runKeywords,
}

func init() {
	keywordsFilters.register(keywordsCmd)
	keywordsCmd.Flags().IntVarP(&keywordsLimit, "limit", "n", 10, "maximum number of keywords")
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}

	posts, err := keywordsFilters.filteredPosts(cmd)
	if err != nil {
		return err
	}

	keywords := analyticsService.TopKeywords(posts, keywordsLimit)

	if keywordsJSON {
		data, err := json.MarshalIndent(keywords, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal keywords: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(keywords) == 0 {
		cmd.Println("No keywords found.")
		return nil
	}

	cmd.Println("Top Keywords")
	cmd.Println("============")
	maxCount := keywords[0].Count
	for i, kw := range keywords {
		cmd.Printf("  [%2d] %-20s %5d %s\n", i+1, kw.Keyword, kw.Count, countBar(kw.Count, maxCount))
	}

	return nil
}
