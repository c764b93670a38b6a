// Package mcp provides an MCP (Model Context Protocol) server adapter
// for ThreadLens. It lets AI assistants like Claude query the loaded
// corpus through the analytics aggregations.
package mcp

import "errors"

// ErrMissingCorpusService is returned when the corpus service is not provided.
var ErrMissingCorpusService = errors.New("mcp: corpus service is required")

// ErrMissingAnalyticsService is returned when the analytics service is not provided.
var ErrMissingAnalyticsService = errors.New("mcp: analytics service is required")
