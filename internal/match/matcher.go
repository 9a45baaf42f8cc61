// Package match fuzzy-searches the catalog for items resembling a scanned title.
package match

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/discarr/discarr/internal/catalog"
	"github.com/discarr/discarr/internal/title"
)

const (
	// acceptScore accepts a candidate on similarity alone.
	acceptScore = 80
	// substringScore accepts a candidate when one title contains the other.
	// Substring overlap catches truncated or retailer-mangled titles that a
	// pure edit-distance ratio penalizes for the length difference.
	substringScore = 60
	// yearWindow is the tolerated distance between search and candidate year.
	yearWindow = 2
	// maxResults bounds the returned candidate list.
	maxResults = 10
)

// Result pairs a catalog item with its similarity score (0-100).
type Result struct {
	Item  *catalog.MediaItem
	Score int
}

// Options restricts a search.
type Options struct {
	Type *catalog.MediaType
	Year *int // candidates without a recorded year always pass
}

// Search scores catalog items against the query and returns accepted
// candidates sorted by score descending, ties broken by catalog insertion
// order. Items must be in insertion order, as returned by Store.All.
func Search(items []*catalog.MediaItem, query string, opts Options) []Result {
	q := title.Fold(title.Clean(query))
	if q == "" {
		return nil
	}

	var results []Result
	for _, item := range items {
		if opts.Type != nil && item.Type != *opts.Type {
			continue
		}

		c := title.Fold(item.Title)
		sim, err := edlib.StringsSimilarity(q, c, edlib.Levenshtein)
		if err != nil {
			continue
		}
		score := int(sim*100 + 0.5)

		substring := strings.Contains(q, c) || strings.Contains(c, q)
		if score < acceptScore && !(score >= substringScore && substring) {
			continue
		}
		if opts.Year != nil && item.Year != 0 && abs(item.Year-*opts.Year) > yearWindow {
			continue
		}

		results = append(results, Result{Item: item, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
