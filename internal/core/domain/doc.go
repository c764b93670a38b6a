// Package domain defines the core business entities for threadlens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Post: A canonical normalised social-media submission
//   - FilterSpec: One interaction's view of the corpus
//   - SummaryStats, TimeSeriesPoint, KeywordCount, Contributor,
//     WeekdayCount: aggregate views of a filtered set
//   - InteractionGraph, GraphStats: the bipartite author-community graph
//   - ChatSession: explicit assistant conversation state
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
