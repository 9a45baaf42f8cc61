package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/discarr/discarr/pkg/radarr"
	"github.com/discarr/discarr/pkg/sonarr"
)

func TestQueryVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"short title with article",
			"The Matrix",
			[]string{"The Matrix", "Matrix"},
		},
		{
			"short title without stop words",
			"Blade Runner",
			[]string{"Blade Runner"},
		},
		{
			"long title adds word prefixes",
			"Pirates of the Caribbean Curse",
			[]string{
				"Pirates of the Caribbean Curse",
				"Pirates of the",
				"Pirates of",
				"Pirates Caribbean Curse",
			},
		},
		{
			"stop-word variant only when filtering changes the title",
			"Blade Runner Final",
			[]string{"Blade Runner Final"},
		},
		{
			"three words with stop word",
			"The Lion King",
			[]string{"The Lion King", "Lion King"},
		},
		{"empty", "", nil},
		{"all stop words", "The Of And", []string{"The Of And"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queryVariants(tt.input))
		})
	}
}

func movieCand(id int64, year int, rating float64) radarr.MovieCandidate {
	return radarr.MovieCandidate{
		TMDBID:  id,
		Year:    year,
		Ratings: radarr.Ratings{Value: rating},
	}
}

func TestRankMovies_ExactYearFirst(t *testing.T) {
	candidates := []radarr.MovieCandidate{
		movieCand(1, 2021, 9.0), // near, not exact
		movieCand(2, 1984, 7.0), // exact, lower rating
		movieCand(3, 1984, 8.5), // exact, higher rating
		movieCand(4, 1990, 9.9), // outside the window
	}

	ranked := rankMovies(candidates, 1984)
	assert.Len(t, ranked, 2, "only exact-year matches survive when any exist")
	assert.Equal(t, int64(3), ranked[0].TMDBID, "highest-rated exact-year match must win")
}

func TestRankMovies_NearYearByCloseness(t *testing.T) {
	candidates := []radarr.MovieCandidate{
		movieCand(1, 2002, 6.0),
		movieCand(2, 2001, 9.0),
		movieCand(3, 0, 9.9), // unknown year never counts as near
	}

	ranked := rankMovies(candidates, 2000)
	assert.Len(t, ranked, 2)
	assert.Equal(t, int64(2), ranked[0].TMDBID, "closer year wins over rating")
}

func TestRankMovies_NoYearOldestFirst(t *testing.T) {
	candidates := []radarr.MovieCandidate{
		movieCand(1, 2017, 7.0), // remake
		movieCand(2, 1995, 7.5), // original
		movieCand(3, 0, 9.9),    // unknown year sorts last
	}

	ranked := rankMovies(candidates, 0)
	assert.Equal(t, int64(2), ranked[0].TMDBID)
	assert.Equal(t, int64(3), ranked[2].TMDBID)
}

func TestRankMovies_SameYearByRating(t *testing.T) {
	candidates := []radarr.MovieCandidate{
		movieCand(1, 1999, 6.5),
		movieCand(2, 1999, 8.7),
	}

	ranked := rankMovies(candidates, 0)
	assert.Equal(t, int64(2), ranked[0].TMDBID)
}

func TestRankMovies_Empty(t *testing.T) {
	assert.Nil(t, rankMovies(nil, 1999))
}

func TestRankSeries(t *testing.T) {
	candidates := []sonarr.SeriesCandidate{
		{TVDBID: 1, Year: 2014, Ratings: sonarr.Ratings{Value: 8.0}},
		{TVDBID: 2, Year: 1996, Ratings: sonarr.Ratings{Value: 7.0}},
		{TVDBID: 3, Year: 0, Ratings: sonarr.Ratings{Value: 9.9}},
	}

	ranked := rankSeries(candidates)
	assert.Equal(t, int64(2), ranked[0].TVDBID, "oldest series first")
	assert.Equal(t, int64(3), ranked[2].TVDBID, "unknown year sorts last")
}
