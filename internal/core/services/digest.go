package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/threadlens/threadlens/internal/core/domain"
)

// Digest combines the aggregate views into the textual context handed
// to the assistant layer. The assistant only ever reads this; there is
// no mutation path back into the analytics core.
func (s *AnalyticsService) Digest(
	stats domain.SummaryStats,
	keywords []domain.KeywordCount,
	contributors []domain.Contributor,
	graphStats domain.GraphStats,
) string {
	keywordParts := make([]string, 0, 10)
	for i, kw := range keywords {
		if i >= 10 {
			break
		}
		keywordParts = append(keywordParts, fmt.Sprintf("%s (%d)", kw.Keyword, kw.Count))
	}

	contributorParts := make([]string, 0, 5)
	for i, c := range contributors {
		if i >= 5 {
			break
		}
		contributorParts = append(contributorParts,
			fmt.Sprintf("%s (%d posts, %.1f%%)", c.Author, c.PostCount, c.Percentage))
	}

	var b strings.Builder
	b.WriteString("CURRENT DATASET ANALYSIS:\n\n")
	b.WriteString("OVERVIEW:\n")
	fmt.Fprintf(&b, "- Total Posts: %d\n", stats.TotalPosts)
	fmt.Fprintf(&b, "- Unique Authors: %d\n", stats.UniqueAuthors)
	fmt.Fprintf(&b, "- Date Range: %s\n", stats.DateRange)
	fmt.Fprintf(&b, "- Average Score: %.1f\n", stats.AvgScore)
	fmt.Fprintf(&b, "- Total Comments: %d\n\n", stats.TotalComments)
	fmt.Fprintf(&b, "TOP KEYWORDS: %s\n\n", strings.Join(keywordParts, ", "))
	fmt.Fprintf(&b, "TOP CONTRIBUTORS: %s\n\n", strings.Join(contributorParts, ", "))
	b.WriteString("NETWORK ANALYSIS:\n")
	fmt.Fprintf(&b, "- Nodes: %d\n", graphStats.Nodes)
	fmt.Fprintf(&b, "- Connections: %d\n", graphStats.Edges)
	fmt.Fprintf(&b, "- Network Density: %.3f\n", graphStats.Density)
	fmt.Fprintf(&b, "- Connected Components: %d\n\n", graphStats.ConnectedComponents)
	b.WriteString("This data represents social media posts filtered by the user's current selections. ")
	b.WriteString("The user can ask about patterns, trends, or request analysis suggestions.\n")

	return b.String()
}

// Report renders the human-readable plain-text summary report offered
// for download. It is a terminal, one-way output with no import path.
func (s *AnalyticsService) Report(
	stats domain.SummaryStats,
	keywords []domain.KeywordCount,
	contributors []domain.Contributor,
	graphStats domain.GraphStats,
) string {
	var b strings.Builder

	b.WriteString("Social Media Analytics Summary Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	b.WriteString("SUMMARY STATISTICS:\n")
	fmt.Fprintf(&b, "- Total Posts: %d\n", stats.TotalPosts)
	fmt.Fprintf(&b, "- Unique Authors: %d\n", stats.UniqueAuthors)
	fmt.Fprintf(&b, "- Date Range: %s\n", stats.DateRange)
	fmt.Fprintf(&b, "- Average Score: %.2f\n", stats.AvgScore)
	fmt.Fprintf(&b, "- Total Comments: %d\n\n", stats.TotalComments)

	b.WriteString("TOP CONTRIBUTORS:\n")
	for _, c := range contributors {
		fmt.Fprintf(&b, "%-24s %6d posts  %6.2f%%\n", c.Author, c.PostCount, c.Percentage)
	}
	b.WriteString("\nTOP KEYWORDS:\n")
	for i, kw := range keywords {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "%s: %d\n", kw.Keyword, kw.Count)
	}

	b.WriteString("\nNETWORK STATISTICS:\n")
	fmt.Fprintf(&b, "- Nodes: %d\n", graphStats.Nodes)
	fmt.Fprintf(&b, "- Edges: %d\n", graphStats.Edges)
	fmt.Fprintf(&b, "- Density: %.3f\n", graphStats.Density)
	fmt.Fprintf(&b, "- Connected Components: %d\n", graphStats.ConnectedComponents)

	return b.String()
}
