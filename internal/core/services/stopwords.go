package services

// stopWords are common English function words excluded from keyword
// frequency analysis. Matching is case-insensitive because tokens are
// lower-cased before lookup.
var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		"the", "and", "or", "but", "in", "on", "at", "to", "for", "of",
		"with", "by", "from", "up", "about", "into", "through", "during",
		"before", "after", "above", "below", "between", "among", "this",
		"that", "these", "those", "are", "was", "were", "been", "being",
		"have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "must", "can", "shall", "not", "what",
		"when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "only", "own",
		"same", "so", "than", "too", "very", "just", "now", "here",
		"there", "then", "them", "they", "their", "his", "her", "its",
		"our", "your", "you", "we", "he", "she", "it", "me", "him",
		"us", "my", "mine", "yours", "ours", "theirs",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}
