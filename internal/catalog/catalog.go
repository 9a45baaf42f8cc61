// Package catalog manages the media catalog (movies, series, physical discs).
package catalog

import (
	"time"
)

// MediaType distinguishes movies from series.
type MediaType string

const (
	TypeMovie  MediaType = "movie"
	TypeSeries MediaType = "series"
)

// Source records how an item entered the catalog.
type Source string

const (
	SourceImport  Source = "provider-import"
	SourceBarcode Source = "barcode-scan"
)

// MediaItem represents one catalog entry. The identity key is the
// (Type, external id) pair; Barcode is a secondary, mutable attachment.
type MediaItem struct {
	ID          int64
	Type        MediaType
	Title       string
	Year        int    // 0 = unknown
	TMDBID      *int64 // nil for series
	TVDBID      *int64 // nil for movies
	SeasonCount *int   // nil for movies
	HasPhysical bool
	Barcode     *string // set only when HasPhysical came from a scan
	Source      Source
	Genres      []string
	AddedAt     time.Time
	UpdatedAt   time.Time
}

// ExternalID returns the identity id for the item's type.
// Returns 0, false when no external id is recorded.
func (m *MediaItem) ExternalID() (int64, bool) {
	switch {
	case m.Type == TypeMovie && m.TMDBID != nil:
		return *m.TMDBID, true
	case m.Type == TypeSeries && m.TVDBID != nil:
		return *m.TVDBID, true
	}
	return 0, false
}

// Stats summarizes the catalog for display.
type Stats struct {
	Movies int
	Series int
	Discs  int
}
