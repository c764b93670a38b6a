// Package reddit normalises raw reddit export records into canonical posts.
package reddit

import (
	"encoding/json"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

var (
	hashtagRe = regexp.MustCompile(`#(\w+)`)
	mentionRe = regexp.MustCompile(`u/(\w+)`)
)

// Normaliser converts loosely-typed reddit records into domain.Post
// values. Every field access defaults explicitly: a missing author
// becomes "unknown", missing numerics become 0, missing strings become
// empty. Nothing short of a nil record is an error.
type Normaliser struct{}

// New creates a new reddit normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Platform returns the platform identifier stamped on produced posts.
func (n *Normaliser) Platform() string {
	return "reddit"
}

// Normalise converts a raw key-value record into a Post.
// Records may nest the payload one level under a "data" key, as the
// reddit listing API does. Timestamp resolution tries "created_utc"
// then "created"; an absent or unparsable value yields a zero
// CreatedAt, which the loader treats as grounds for dropping the post.
func (n *Normaliser) Normalise(raw map[string]any) (*domain.Post, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	// Unwrap the "data" envelope when present.
	if data, ok := raw["data"].(map[string]any); ok {
		raw = data
	}

	post := &domain.Post{
		ID:          stringField(raw, "id", ""),
		Title:       stringField(raw, "title", ""),
		Text:        stringField(raw, "selftext", ""),
		Author:      stringField(raw, "author", "unknown"),
		Platform:    n.Platform(),
		Community:   stringField(raw, "subreddit", ""),
		Score:       intField(raw, "score"),
		NumComments: intField(raw, "num_comments"),
		URL:         stringField(raw, "url", ""),
		CreatedAt:   resolveTimestamp(raw),
	}

	body := post.Title + " " + post.Text
	post.Hashtags = extractPattern(hashtagRe, body)
	post.Mentions = extractPattern(mentionRe, body)
	post.Domains = extractDomains([]string{post.URL})

	return post, nil
}

// resolveTimestamp resolves the epoch timestamp from the primary field,
// falling back to the secondary. Zero, missing and non-numeric values
// all yield the zero time.
func resolveTimestamp(raw map[string]any) time.Time {
	epoch, ok := epochField(raw, "created_utc")
	if !ok {
		epoch, ok = epochField(raw, "created")
	}
	if !ok || epoch == 0 {
		return time.Time{}
	}

	sec := int64(epoch)
	nsec := int64((epoch - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}

// epochField reads a Unix epoch value that may arrive as a JSON number,
// an integer, or a numeric string.
func epochField(raw map[string]any, key string) (float64, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, false
	}

	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// stringField reads a string value, substituting def when the key is
// absent, nil, or not a string.
func stringField(raw map[string]any, key, def string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// intField reads an integer value that may arrive as a JSON number,
// an integer, or a numeric string. Anything else is 0.
func intField(raw map[string]any, key string) int {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0
	}

	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// extractPattern collects the first capture group of every match in the
// lower-cased text, deduplicated and sorted.
func extractPattern(re *regexp.Regexp, text string) []string {
	if text == "" {
		return nil
	}

	matches := re.FindAllStringSubmatch(strings.ToLower(text), -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		seen[m[1]] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// extractDomains parses each URL and collects its host, lower-cased and
// with a leading "www." stripped. Invalid URLs are silently skipped.
func extractDomains(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		parsed, err := url.Parse(u)
		if err != nil || parsed.Host == "" {
			continue
		}
		host := strings.ToLower(parsed.Hostname())
		host = strings.TrimPrefix(host, "www.")
		if host != "" {
			seen[host] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
