package title

import (
	"strings"

	"github.com/discarr/discarr/internal/catalog"
)

// seriesKeywords mark a directory title as episodic. "dvd" is deliberately
// excluded: nearly every disc listing contains it.
var seriesKeywords = []string{"season", "complete", "series", "tv"}

// GuessType decides movie vs. series from a raw title. This is a heuristic
// default only; an explicit user choice in the confirmation path overrides it.
func GuessType(raw string) catalog.MediaType {
	lower := strings.ToLower(raw)
	for _, kw := range seriesKeywords {
		if strings.Contains(lower, kw) {
			return catalog.TypeSeries
		}
	}
	return catalog.TypeMovie
}
