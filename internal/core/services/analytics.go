package services

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driving"
	"github.com/threadlens/threadlens/internal/logger"
)

// Ensure AnalyticsService implements the interface.
var _ driving.AnalyticsService = (*AnalyticsService)(nil)

const (
	// DefaultTopKeywords is the default keyword ranking size.
	DefaultTopKeywords = 10

	// DefaultTopContributors is the default contributor ranking size.
	DefaultTopContributors = 10

	// DefaultGraphAuthors is the default author restriction for the
	// interaction graph.
	DefaultGraphAuthors = 15

	// DefaultGraphCommunities is the default community restriction for
	// the interaction graph.
	DefaultGraphCommunities = 10

	// minKeywordLen is the shortest token the keyword tokenizer keeps.
	minKeywordLen = 3
)

// keywordRe matches lower-case alphabetic runs; tokens shorter than
// minKeywordLen are discarded after matching.
var keywordRe = regexp.MustCompile(`[a-z]+`)

// AnalyticsService computes aggregate views over filtered post sets.
// It carries no state across calls; every method is a pure function of
// its inputs and never errors, returning well-typed empty results for
// empty input.
type AnalyticsService struct{}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// Filter returns the subsequence of posts matching spec, preserving
// input order. All set criteria compose conjunctively.
func (s *AnalyticsService) Filter(posts []domain.Post, spec domain.FilterSpec) []domain.Post {
	if spec.IsZero() {
		return posts
	}

	logger.Debug("Filtering %d posts: keyword=%q platform=%q community=%q",
		len(posts), spec.Keyword, spec.Platform, spec.Community)

	filtered := make([]domain.Post, 0, len(posts))
	for i := range posts {
		if spec.Matches(&posts[i]) {
			filtered = append(filtered, posts[i])
		}
	}

	logger.Debug("Filter kept %d of %d posts", len(filtered), len(posts))
	return filtered
}

// Summary computes headline statistics for the filtered set.
func (s *AnalyticsService) Summary(posts []domain.Post) domain.SummaryStats {
	if len(posts) == 0 {
		return domain.SummaryStats{DateRange: "No data"}
	}

	authors := make(map[string]struct{})
	platforms := make(map[string]struct{})
	var scoreSum, commentSum int
	minDate, maxDate := posts[0].CreatedAt, posts[0].CreatedAt

	for i := range posts {
		p := &posts[i]
		authors[p.Author] = struct{}{}
		platforms[p.Platform] = struct{}{}
		scoreSum += p.Score
		commentSum += p.NumComments
		if p.CreatedAt.Before(minDate) {
			minDate = p.CreatedAt
		}
		if p.CreatedAt.After(maxDate) {
			maxDate = p.CreatedAt
		}
	}

	return domain.SummaryStats{
		TotalPosts:    len(posts),
		UniqueAuthors: len(authors),
		Platforms:     len(platforms),
		AvgScore:      float64(scoreSum) / float64(len(posts)),
		TotalComments: commentSum,
		DateRange:     minDate.Format("2006-01-02") + " to " + maxDate.Format("2006-01-02"),
	}
}

// TimeSeries counts posts per bucket, ordered by bucket start.
// Buckets with no posts are omitted.
func (s *AnalyticsService) TimeSeries(posts []domain.Post, bucket domain.TimeBucket) []domain.TimeSeriesPoint {
	counts := make(map[int64]int)
	starts := make(map[int64]time.Time)
	for i := range posts {
		start := bucket.Truncate(posts[i].CreatedAt)
		counts[start.Unix()]++
		starts[start.Unix()] = start
	}

	points := make([]domain.TimeSeriesPoint, 0, len(counts))
	for key, n := range counts {
		points = append(points, domain.TimeSeriesPoint{Date: starts[key], PostCount: n})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// TopKeywords tokenizes the combined text of the whole filtered set
// into lower-case alphabetic runs of length >= 3, drops stop words,
// and ranks by descending count. Ties keep first-encountered order.
func (s *AnalyticsService) TopKeywords(posts []domain.Post, topN int) []domain.KeywordCount {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}
	if len(posts) == 0 {
		return []domain.KeywordCount{}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for i := range posts {
		for _, tok := range keywordRe.FindAllString(posts[i].CombinedText, -1) {
			if len(tok) < minKeywordLen {
				continue
			}
			if _, stop := stopWords[tok]; stop {
				continue
			}
			if _, ok := counts[tok]; !ok {
				firstSeen[tok] = order
				order++
			}
			counts[tok]++
		}
	}

	ranked := make([]domain.KeywordCount, 0, len(counts))
	for word, n := range counts {
		ranked = append(ranked, domain.KeywordCount{Keyword: word, Count: n})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Keyword] < firstSeen[ranked[j].Keyword]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// KeywordSeries buckets posts mentioning each keyword (case-insensitive
// substring against CombinedText, not a tokenized match) over time.
// Keywords matching nothing contribute no rows.
func (s *AnalyticsService) KeywordSeries(
	posts []domain.Post, keywords []string, bucket domain.TimeBucket,
) []domain.KeywordSeriesPoint {
	rows := []domain.KeywordSeriesPoint{}
	if len(posts) == 0 || len(keywords) == 0 {
		return rows
	}

	for _, kw := range keywords {
		needle := strings.ToLower(kw)
		matched := make([]domain.Post, 0)
		for i := range posts {
			if strings.Contains(posts[i].CombinedText, needle) {
				matched = append(matched, posts[i])
			}
		}
		if len(matched) == 0 {
			continue
		}

		for _, pt := range s.TimeSeries(matched, bucket) {
			rows = append(rows, domain.KeywordSeriesPoint{
				Date:    pt.Date,
				Count:   pt.PostCount,
				Keyword: kw,
			})
		}
	}

	return rows
}

// TopContributors ranks authors by post count descending; ties keep
// first-encountered order. Percentages are shares of the whole
// filtered set, rounded to two decimals.
func (s *AnalyticsService) TopContributors(posts []domain.Post, topN int) []domain.Contributor {
	if topN <= 0 {
		topN = DefaultTopContributors
	}
	if len(posts) == 0 {
		return []domain.Contributor{}
	}

	type acc struct {
		count    int
		scoreSum int
		comments int
	}
	byAuthor := make(map[string]*acc)
	order := make([]string, 0)

	for i := range posts {
		p := &posts[i]
		a, ok := byAuthor[p.Author]
		if !ok {
			a = &acc{}
			byAuthor[p.Author] = a
			order = append(order, p.Author)
		}
		a.count++
		a.scoreSum += p.Score
		a.comments += p.NumComments
	}

	total := float64(len(posts))
	ranked := make([]domain.Contributor, 0, len(order))
	for _, author := range order {
		a := byAuthor[author]
		ranked = append(ranked, domain.Contributor{
			Author:        author,
			PostCount:     a.count,
			AvgScore:      float64(a.scoreSum) / float64(a.count),
			TotalComments: a.comments,
			Percentage:    round2(float64(a.count) / total * 100),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PostCount > ranked[j].PostCount
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// WeeklyRhythm counts posts per weekday. This is the one aggregation
// that zero-fills: always exactly seven rows, Monday through Sunday.
func (s *AnalyticsService) WeeklyRhythm(posts []domain.Post) []domain.WeekdayCount {
	counts := make(map[string]int, 7)
	for i := range posts {
		counts[posts[i].CreatedAt.Weekday().String()]++
	}

	rows := make([]domain.WeekdayCount, 0, 7)
	for _, day := range domain.Weekdays {
		rows = append(rows, domain.WeekdayCount{Day: day, PostCount: counts[day]})
	}
	return rows
}

// round2 rounds to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
