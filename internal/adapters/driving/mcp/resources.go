package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for ThreadLens resources.
	uriScheme = "threadlens://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource with the full-corpus digest.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "digest",
		Name:        "digest",
		Description: "Textual analysis digest of the loaded corpus",
		MIMEType:    "text/plain",
	}, s.handleDigestResource)

	// Static resource listing platforms and communities.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "facets",
		Name:        "facets",
		Description: "Platforms and communities present in the corpus",
		MIMEType:    "application/json",
	}, s.handleFacetsResource)
}

// handleDigestResource renders the dataset digest over the whole
// corpus.
func (s *Server) handleDigestResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	posts := s.ports.Corpus.Posts()

	stats := s.ports.Analytics.Summary(posts)
	keywords := s.ports.Analytics.TopKeywords(posts, 10)
	contributors := s.ports.Analytics.TopContributors(posts, 10)
	graph := s.ports.Analytics.InteractionGraph(posts, 15, 10)
	digest := s.ports.Analytics.Digest(stats, keywords, contributors, s.ports.Analytics.GraphStats(graph))

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     digest,
		}},
	}, nil
}

// handleFacetsResource lists the distinct platforms and communities.
func (s *Server) handleFacetsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	facets := struct {
		Platforms   []string `json:"platforms"`
		Communities []string `json:"communities"`
	}{
		Platforms:   s.ports.Corpus.Platforms(),
		Communities: s.ports.Corpus.Communities(0),
	}

	data, err := json.MarshalIndent(facets, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling facets: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
