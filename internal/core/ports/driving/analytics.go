package driving

import (
	"github.com/threadlens/threadlens/internal/core/domain"
)

// AnalyticsService computes aggregate views over a filtered post set.
//
// Every operation is a pure function of its inputs: no state is carried
// across calls, empty input yields a well-typed empty result, and no
// operation returns an error. The ordering and zero-fill behaviour of
// each view is a stable contract the presentation layer binds to.
type AnalyticsService interface {
	// Filter returns the subsequence of posts matching spec, preserving
	// input order.
	Filter(posts []domain.Post, spec domain.FilterSpec) []domain.Post

	// Summary computes headline statistics for the filtered set.
	Summary(posts []domain.Post) domain.SummaryStats

	// TimeSeries counts posts per time bucket. Only buckets with at
	// least one post appear, ordered by bucket start.
	TimeSeries(posts []domain.Post, bucket domain.TimeBucket) []domain.TimeSeriesPoint

	// TopKeywords ranks keywords by occurrence across the filtered set,
	// descending, ties in first-encountered order. topN <= 0 means the
	// default of 10.
	TopKeywords(posts []domain.Post, topN int) []domain.KeywordCount

	// KeywordSeries buckets posts mentioning each keyword over time.
	// Keywords matching nothing contribute no rows.
	KeywordSeries(posts []domain.Post, keywords []string, bucket domain.TimeBucket) []domain.KeywordSeriesPoint

	// TopContributors ranks authors by post count, descending, ties in
	// first-encountered order. topN <= 0 means the default of 10.
	TopContributors(posts []domain.Post, topN int) []domain.Contributor

	// WeeklyRhythm counts posts per weekday. Always exactly seven rows,
	// Monday through Sunday, zero-filled.
	WeeklyRhythm(posts []domain.Post) []domain.WeekdayCount

	// InteractionGraph builds the bipartite author-community graph from
	// the filtered set, restricted to the top authors and communities
	// (each selected independently from the full filtered set).
	// Non-positive limits fall back to the defaults of 15 and 10.
	InteractionGraph(posts []domain.Post, topAuthors, topCommunities int) *domain.InteractionGraph

	// GraphStats computes structural statistics for a graph.
	GraphStats(g *domain.InteractionGraph) domain.GraphStats

	// Digest combines summary, keywords, contributors and graph stats
	// into the textual context handed to the assistant layer.
	Digest(stats domain.SummaryStats, keywords []domain.KeywordCount,
		contributors []domain.Contributor, graphStats domain.GraphStats) string

	// Report renders the human-readable plain-text summary report.
	Report(stats domain.SummaryStats, keywords []domain.KeywordCount,
		contributors []domain.Contributor, graphStats domain.GraphStats) string
}
