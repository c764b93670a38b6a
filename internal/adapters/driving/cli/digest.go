package cli

import (
	"github.com/threadlens/threadlens/internal/core/domain"
)

// buildDigest assembles the aggregate views an assistant prompt or
// report needs from the filtered posts.
func buildDigest(posts []domain.Post) string {
	stats, keywords, contributors, graphStats := aggregates(posts)
	return analyticsService.Digest(stats, keywords, contributors, graphStats)
}

func buildReport(posts []domain.Post) string {
	stats, keywords, contributors, graphStats := aggregates(posts)
	return analyticsService.Report(stats, keywords, contributors, graphStats)
}

func aggregates(posts []domain.Post) (
	domain.SummaryStats, []domain.KeywordCount, []domain.Contributor, domain.GraphStats,
) {
	stats := analyticsService.Summary(posts)
	keywords := analyticsService.TopKeywords(posts, 10)
	contributors := analyticsService.TopContributors(posts, 10)
	graph := analyticsService.InteractionGraph(posts, 15, 10)
	return stats, keywords, contributors, analyticsService.GraphStats(graph)
}
