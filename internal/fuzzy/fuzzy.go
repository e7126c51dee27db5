// Package fuzzy ranks items by approximate string similarity against a query.
// Scoring uses a partial-ratio metric (0-100) that tolerates the query being a
// fragment of the candidate string, so "Europe" scores high against
// "Europe Adventure 2023".
package fuzzy

import (
	"sort"
	"strings"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum score a candidate must reach to be returned.
const DefaultThreshold = 60

// Match pairs a matched item with its similarity score.
type Match[T any] struct {
	Item  T
	Score int
}

type options struct {
	threshold int
	limit     int
}

// Option adjusts search behavior.
type Option func(*options)

// WithThreshold overrides the minimum score (0-100).
func WithThreshold(n int) Option {
	return func(o *options) { o.threshold = n }
}

// WithLimit caps the number of returned matches.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// Search scores every item's key against query and returns matches at or
// above the threshold, ordered by descending score. Ties keep the input
// order. An empty item list or blank query yields no matches rather than an
// error. Items whose key is empty never match.
func Search[T any](items []T, query string, key func(T) string, opts ...Option) []Match[T] {
	o := options{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	if len(items) == 0 || strings.TrimSpace(query) == "" {
		return nil
	}

	matches := make([]Match[T], 0, len(items))
	for _, item := range items {
		candidate := key(item)
		if candidate == "" {
			continue
		}
		score := fuzzywuzzy.PartialRatio(query, candidate)
		if score >= o.threshold {
			matches = append(matches, Match[T]{Item: item, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if o.limit > 0 && len(matches) > o.limit {
		matches = matches[:o.limit]
	}
	return matches
}
