package domain

import (
	"strings"
	"time"
)

// Post is the canonical normalised social-media submission.
// It is immutable once the corpus is loaded.
type Post struct {
	// ID is the stable unique identifier and the dedup key.
	ID string

	// Title is the submission title (may be empty).
	Title string

	// Text is the submission body (may be empty).
	Text string

	// Author is the posting account, "unknown" when absent.
	Author string

	// Platform is the originating platform (e.g. "reddit").
	Platform string

	// Community is the community the post was made in (may be empty).
	Community string

	// Score is the signed vote score.
	Score int

	// NumComments is the comment count (never negative).
	NumComments int

	// URL is the outbound link (may be empty).
	URL string

	// CreatedAt is the submission time. Every post retained in the
	// corpus has a valid (non-zero) CreatedAt; the loader drops the rest.
	CreatedAt time.Time

	// Hashtags, Mentions and Domains are case-folded deduplicated
	// extractions from the post text and URL, sorted for determinism.
	Hashtags []string
	Mentions []string
	Domains  []string

	// CombinedText is the lower-cased "Title Text" join, derived once at
	// load time and used for all substring and keyword operations.
	CombinedText string
}

// DeriveCombinedText computes the canonical lower-cased search text.
func DeriveCombinedText(title, text string) string {
	return strings.ToLower(title + " " + text)
}

// FilterAll is the sentinel that disables an equality filter.
const FilterAll = "All"

// FilterSpec describes one interaction's view of the corpus.
// Zero-valued criteria impose no constraint; all set criteria are ANDed.
type FilterSpec struct {
	// Keyword is a case-insensitive substring matched against CombinedText.
	Keyword string

	// From and To bound CreatedAt inclusively on both ends, comparing the
	// date portion only. Nil means unbounded.
	From *time.Time
	To   *time.Time

	// Platform must match Post.Platform exactly. Empty or "All" disables.
	Platform string

	// Community must match Post.Community exactly. Empty or "All" disables.
	Community string
}

// Matches reports whether the post satisfies every set criterion.
func (f FilterSpec) Matches(p *Post) bool {
	if f.Keyword != "" && !strings.Contains(p.CombinedText, strings.ToLower(f.Keyword)) {
		return false
	}
	if f.From != nil && dateKey(p.CreatedAt) < dateKey(*f.From) {
		return false
	}
	if f.To != nil && dateKey(p.CreatedAt) > dateKey(*f.To) {
		return false
	}
	if f.Platform != "" && f.Platform != FilterAll && p.Platform != f.Platform {
		return false
	}
	if f.Community != "" && f.Community != FilterAll && p.Community != f.Community {
		return false
	}
	return true
}

// IsZero reports whether no criterion is set.
func (f FilterSpec) IsZero() bool {
	return f.Keyword == "" && f.From == nil && f.To == nil &&
		(f.Platform == "" || f.Platform == FilterAll) &&
		(f.Community == "" || f.Community == FilterAll)
}

// dateKey reduces a time to an orderable calendar date in the time's
// own location, so bounds in different zones compare by date portion
// rather than by instant.
func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
