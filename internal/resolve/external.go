package resolve

import (
	"context"
	"sort"
	"strings"

	"github.com/discarr/discarr/pkg/radarr"
	"github.com/discarr/discarr/pkg/sonarr"
)

// stopWords are articles and conjunctions dropped for the filtered query
// variant. Directory titles often keep these where provider titles don't.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true,
	"and": true, "or": true, "of": true,
}

// queryVariants builds the fan-out set for a cleaned title: the full title;
// for titles longer than 3 words, their first 3 and first 2 words; and a
// stop-word-filtered variant when filtering actually changes the word count.
func queryVariants(cleaned string) []string {
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return nil
	}

	variants := []string{cleaned}
	if len(words) > 3 {
		variants = append(variants,
			strings.Join(words[:3], " "),
			strings.Join(words[:2], " "),
		)
	}

	var kept []string
	for _, w := range words {
		if !stopWords[strings.ToLower(w)] {
			kept = append(kept, w)
		}
	}
	if len(kept) > 0 && len(kept) != len(words) {
		variants = append(variants, strings.Join(kept, " "))
	}
	return variants
}

// searchMovies fans the cleaned title out across query variants and merges
// results, de-duplicating by TMDB id. The first occurrence of an id wins.
// Provider errors degrade to an empty result for that variant.
func (r *Resolver) searchMovies(ctx context.Context, cleaned string) []radarr.MovieCandidate {
	seen := make(map[int64]bool)
	var merged []radarr.MovieCandidate
	for _, variant := range queryVariants(cleaned) {
		results, err := r.movies.Search(ctx, variant)
		if err != nil {
			r.log.Warn("movie search failed", "term", variant, "error", err)
			continue
		}
		for _, c := range results {
			if c.TMDBID == 0 || seen[c.TMDBID] {
				continue
			}
			seen[c.TMDBID] = true
			merged = append(merged, c)
		}
	}
	return merged
}

// rankMovies orders merged candidates per the tie-break policy:
//   - with a preferred year, exact-year matches first (by rating), then
//     matches within 2 years (by closeness, then rating);
//   - otherwise ascending year then descending rating, so an original
//     release beats later remakes when no year signal exists.
func rankMovies(candidates []radarr.MovieCandidate, preferredYear int) []radarr.MovieCandidate {
	if len(candidates) == 0 {
		return nil
	}

	if preferredYear > 0 {
		var exact, near []radarr.MovieCandidate
		for _, c := range candidates {
			switch d := yearDistance(c.Year, preferredYear); {
			case d == 0:
				exact = append(exact, c)
			case d <= 2:
				near = append(near, c)
			}
		}
		if len(exact) > 0 {
			sort.SliceStable(exact, func(i, j int) bool {
				return exact[i].Ratings.Value > exact[j].Ratings.Value
			})
			return exact
		}
		if len(near) > 0 {
			sort.SliceStable(near, func(i, j int) bool {
				di, dj := yearDistance(near[i].Year, preferredYear), yearDistance(near[j].Year, preferredYear)
				if di != dj {
					return di < dj
				}
				return near[i].Ratings.Value > near[j].Ratings.Value
			})
			return near
		}
	}

	ranked := make([]radarr.MovieCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		yi, yj := sortYear(ranked[i].Year), sortYear(ranked[j].Year)
		if yi != yj {
			return yi < yj
		}
		return ranked[i].Ratings.Value > ranked[j].Ratings.Value
	})
	return ranked
}

// searchSeries is the simplified single-query series path.
func (r *Resolver) searchSeries(ctx context.Context, cleaned string) []sonarr.SeriesCandidate {
	results, err := r.series.Search(ctx, cleaned)
	if err != nil {
		r.log.Warn("series search failed", "term", cleaned, "error", err)
		return nil
	}
	seen := make(map[int64]bool)
	var merged []sonarr.SeriesCandidate
	for _, c := range results {
		if c.TVDBID == 0 || seen[c.TVDBID] {
			continue
		}
		seen[c.TVDBID] = true
		merged = append(merged, c)
	}
	return merged
}

// rankSeries orders candidates oldest-first, rating as tie-break.
func rankSeries(candidates []sonarr.SeriesCandidate) []sonarr.SeriesCandidate {
	ranked := make([]sonarr.SeriesCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		yi, yj := sortYear(ranked[i].Year), sortYear(ranked[j].Year)
		if yi != yj {
			return yi < yj
		}
		return ranked[i].Ratings.Value > ranked[j].Ratings.Value
	})
	return ranked
}

func yearDistance(year, preferred int) int {
	if year == 0 {
		// Unknown years never count as exact or near.
		return int(^uint(0) >> 1)
	}
	d := year - preferred
	if d < 0 {
		return -d
	}
	return d
}

// sortYear pushes unknown years past every known one.
func sortYear(year int) int {
	if year == 0 {
		return int(^uint(0) >> 1)
	}
	return year
}
