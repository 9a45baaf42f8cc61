// Package radarr provides a client for the Radarr v3 API, used for movie
// metadata lookup and library registration.
package radarr

// MovieCandidate is a movie search result not yet committed to the catalog.
type MovieCandidate struct {
	TMDBID   int64   `json:"tmdbId"`
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Overview string  `json:"overview"`
	Genres   []string `json:"genres"`
	Ratings  Ratings `json:"ratings"`
}

// Ratings carries the aggregate vote data Radarr exposes on lookup results.
type Ratings struct {
	Votes int     `json:"votes"`
	Value float64 `json:"value"`
}

// addRequest is the POST /api/v3/movie payload.
type addRequest struct {
	TMDBID           int64      `json:"tmdbId"`
	Title            string     `json:"title"`
	Year             int        `json:"year"`
	QualityProfileID int        `json:"qualityProfileId"`
	RootFolderPath   string     `json:"rootFolderPath"`
	Monitored        bool       `json:"monitored"`
	AddOptions       addOptions `json:"addOptions"`
}

type addOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}
