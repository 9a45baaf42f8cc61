// Package sonarr provides a client for the Sonarr v3 API, used for series
// metadata lookup and library registration.
package sonarr

// SeriesCandidate is a series search result not yet committed to the catalog.
type SeriesCandidate struct {
	TVDBID   int64    `json:"tvdbId"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Overview string   `json:"overview"`
	Genres   []string `json:"genres"`
	Seasons  []Season `json:"seasons"`
	Ratings  Ratings  `json:"ratings"`
}

// Season is one entry of a candidate's season list; its length is the
// season count recorded in the catalog.
type Season struct {
	SeasonNumber int  `json:"seasonNumber"`
	Monitored    bool `json:"monitored"`
}

// Ratings carries the aggregate vote data Sonarr exposes on lookup results.
type Ratings struct {
	Votes int     `json:"votes"`
	Value float64 `json:"value"`
}

// SeasonCount returns the number of non-special seasons.
func (s *SeriesCandidate) SeasonCount() int {
	count := 0
	for _, season := range s.Seasons {
		if season.SeasonNumber > 0 {
			count++
		}
	}
	return count
}

// addRequest is the POST /api/v3/series payload.
type addRequest struct {
	TVDBID           int64      `json:"tvdbId"`
	Title            string     `json:"title"`
	Year             int        `json:"year"`
	QualityProfileID int        `json:"qualityProfileId"`
	RootFolderPath   string     `json:"rootFolderPath"`
	Monitored        bool       `json:"monitored"`
	AddOptions       addOptions `json:"addOptions"`
}

type addOptions struct {
	SearchForMissingEpisodes bool `json:"searchForMissingEpisodes"`
}
