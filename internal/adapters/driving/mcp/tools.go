package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/threadlens/threadlens/internal/core/domain"
)

// FilterInput is the shared filter block accepted by every analytics
// tool. All fields are optional; an empty filter selects the whole
// corpus.
type FilterInput struct {
	Keyword   string `json:"keyword,omitempty" jsonschema:"case-insensitive keyword to match in title or text"`
	From      string `json:"from,omitempty" jsonschema:"start date YYYY-MM-DD, inclusive"`
	To        string `json:"to,omitempty" jsonschema:"end date YYYY-MM-DD, inclusive"`
	Platform  string `json:"platform,omitempty" jsonschema:"platform to select"`
	Community string `json:"community,omitempty" jsonschema:"community to select"`
}

// toSpec converts the wire filter into a domain FilterSpec.
func (f FilterInput) toSpec() (domain.FilterSpec, error) {
	spec := domain.FilterSpec{
		Keyword:   f.Keyword,
		Platform:  f.Platform,
		Community: f.Community,
	}
	if f.From != "" {
		t, err := time.Parse("2006-01-02", f.From)
		if err != nil {
			return spec, fmt.Errorf("invalid from date %q: %w", f.From, err)
		}
		spec.From = &t
	}
	if f.To != "" {
		t, err := time.Parse("2006-01-02", f.To)
		if err != nil {
			return spec, fmt.Errorf("invalid to date %q: %w", f.To, err)
		}
		spec.To = &t
	}
	return spec, nil
}

// SummaryInput is the input schema for the summary tool.
type SummaryInput struct {
	Filter FilterInput `json:"filter,omitempty" jsonschema:"optional corpus filter"`
}

// SummaryOutput is the output schema for the summary tool.
type SummaryOutput struct {
	TotalPosts    int     `json:"total_posts"`
	UniqueAuthors int     `json:"unique_authors"`
	Platforms     int     `json:"platforms"`
	AvgScore      float64 `json:"avg_score"`
	TotalComments int     `json:"total_comments"`
	DateRange     string  `json:"date_range"`
}

// KeywordsInput is the input schema for the top_keywords tool.
type KeywordsInput struct {
	Filter FilterInput `json:"filter,omitempty" jsonschema:"optional corpus filter"`
	Limit  int         `json:"limit,omitempty" jsonschema:"maximum number of keywords to return (default 10)"`
}

// KeywordsOutput is the output schema for the top_keywords tool.
type KeywordsOutput struct {
	Keywords []domain.KeywordCount `json:"keywords"`
	Count    int                   `json:"count"`
}

// ContributorsInput is the input schema for the top_contributors tool.
type ContributorsInput struct {
	Filter FilterInput `json:"filter,omitempty" jsonschema:"optional corpus filter"`
	Limit  int         `json:"limit,omitempty" jsonschema:"maximum number of authors to return (default 10)"`
}

// ContributorsOutput is the output schema for the top_contributors tool.
type ContributorsOutput struct {
	Contributors []domain.Contributor `json:"contributors"`
	Count        int                  `json:"count"`
}

// TrendsInput is the input schema for the activity_trends tool.
type TrendsInput struct {
	Filter FilterInput `json:"filter,omitempty" jsonschema:"optional corpus filter"`
	Bucket string      `json:"bucket,omitempty" jsonschema:"time bucket: hour, day, week or month (default day)"`
}

// TrendsOutput is the output schema for the activity_trends tool.
type TrendsOutput struct {
	Series []domain.TimeSeriesPoint `json:"series"`
	Rhythm []domain.WeekdayCount    `json:"weekly_rhythm"`
}

// GraphInput is the input schema for the network_stats tool.
type GraphInput struct {
	Filter         FilterInput `json:"filter,omitempty" jsonschema:"optional corpus filter"`
	TopAuthors     int         `json:"top_authors,omitempty" jsonschema:"number of top authors in the network (default 15)"`
	TopCommunities int         `json:"top_communities,omitempty" jsonschema:"number of top communities in the network (default 10)"`
	IncludeEdges   bool        `json:"include_edges,omitempty" jsonschema:"include the full edge list in the output"`
}

// GraphOutput is the output schema for the network_stats tool.
type GraphOutput struct {
	Stats domain.GraphStats  `json:"stats"`
	Edges []domain.GraphEdge `json:"edges,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summary",
		Description: "Summary statistics for the (optionally filtered) corpus",
	}, s.handleSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "top_keywords",
		Description: "Most frequent keywords, stop words excluded",
	}, s.handleKeywords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "top_contributors",
		Description: "Most active authors with their share of posts",
	}, s.handleContributors)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "activity_trends",
		Description: "Post counts over time plus the Monday-to-Sunday posting rhythm",
	}, s.handleTrends)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "network_stats",
		Description: "Structural statistics of the author-community interaction network",
	}, s.handleGraph)
}

// filtered resolves the filter input against the loaded corpus.
func (s *Server) filtered(f FilterInput) ([]domain.Post, error) {
	spec, err := f.toSpec()
	if err != nil {
		return nil, err
	}
	return s.ports.Analytics.Filter(s.ports.Corpus.Posts(), spec), nil
}

func (s *Server) handleSummary(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SummaryInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	posts, err := s.filtered(input.Filter)
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	stats := s.ports.Analytics.Summary(posts)
	return nil, SummaryOutput{
		TotalPosts:    stats.TotalPosts,
		UniqueAuthors: stats.UniqueAuthors,
		Platforms:     stats.Platforms,
		AvgScore:      stats.AvgScore,
		TotalComments: stats.TotalComments,
		DateRange:     stats.DateRange,
	}, nil
}

func (s *Server) handleKeywords(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input KeywordsInput,
) (*mcp.CallToolResult, KeywordsOutput, error) {
	posts, err := s.filtered(input.Filter)
	if err != nil {
		return nil, KeywordsOutput{}, err
	}

	keywords := s.ports.Analytics.TopKeywords(posts, input.Limit)
	return nil, KeywordsOutput{Keywords: keywords, Count: len(keywords)}, nil
}

func (s *Server) handleContributors(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ContributorsInput,
) (*mcp.CallToolResult, ContributorsOutput, error) {
	posts, err := s.filtered(input.Filter)
	if err != nil {
		return nil, ContributorsOutput{}, err
	}

	contributors := s.ports.Analytics.TopContributors(posts, input.Limit)
	return nil, ContributorsOutput{Contributors: contributors, Count: len(contributors)}, nil
}

func (s *Server) handleTrends(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TrendsInput,
) (*mcp.CallToolResult, TrendsOutput, error) {
	posts, err := s.filtered(input.Filter)
	if err != nil {
		return nil, TrendsOutput{}, err
	}

	bucket := domain.BucketDay
	switch input.Bucket {
	case "", "day":
	case "hour":
		bucket = domain.BucketHour
	case "week":
		bucket = domain.BucketWeek
	case "month":
		bucket = domain.BucketMonth
	default:
		return nil, TrendsOutput{}, fmt.Errorf("invalid bucket %q", input.Bucket)
	}

	return nil, TrendsOutput{
		Series: s.ports.Analytics.TimeSeries(posts, bucket),
		Rhythm: s.ports.Analytics.WeeklyRhythm(posts),
	}, nil
}

func (s *Server) handleGraph(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GraphInput,
) (*mcp.CallToolResult, GraphOutput, error) {
	posts, err := s.filtered(input.Filter)
	if err != nil {
		return nil, GraphOutput{}, err
	}

	g := s.ports.Analytics.InteractionGraph(posts, input.TopAuthors, input.TopCommunities)
	out := GraphOutput{Stats: s.ports.Analytics.GraphStats(g)}
	if input.IncludeEdges {
		out.Edges = g.Edges
	}
	return nil, out, nil
}
