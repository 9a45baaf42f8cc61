// Package resolve sequences barcode resolution: catalog check, directory
// lookup, title cleanup, local fuzzy match, and external metadata search.
package resolve

import (
	"errors"

	"github.com/discarr/discarr/internal/catalog"
	"github.com/discarr/discarr/pkg/radarr"
	"github.com/discarr/discarr/pkg/sonarr"
)

// Status is the terminal state of one barcode resolution.
type Status string

const (
	// StatusToggled: the barcode already labeled a catalog item; its
	// has_physical flag was flipped.
	StatusToggled Status = "toggled"
	// StatusUpdated: a fuzzy local match gained the barcode and the flag.
	StatusUpdated Status = "updated"
	// StatusAdded: an external candidate was registered and inserted.
	StatusAdded Status = "added"
	// StatusNeedsConfirmation: ranked candidates await a human choice.
	StatusNeedsConfirmation Status = "needs_confirmation"
	// StatusNotFound: the pipeline produced nothing; Reason says why.
	StatusNotFound Status = "not_found"
)

// Matching-layer sentinel errors, reported as Outcome reasons.
var (
	// ErrNoCandidate indicates the external search produced no usable result.
	ErrNoCandidate = errors.New("no external candidate")

	// ErrNoPending indicates no resolution awaits confirmation for the barcode.
	ErrNoPending = errors.New("no resolution awaiting confirmation")

	// ErrPendingExpired indicates the pending resolution idled past its TTL.
	ErrPendingExpired = errors.New("pending resolution expired")

	// ErrUnknownCandidate indicates the confirmed choice is not among the
	// candidates offered for the barcode.
	ErrUnknownCandidate = errors.New("chosen candidate not among offered candidates")
)

// Outcome reports how a resolution terminated. Reason is a logging side
// channel for StatusNotFound, never control flow.
type Outcome struct {
	Status     Status
	Item       *catalog.MediaItem // set for toggled/updated/added
	Reason     error              // set for not_found
	Candidates *CandidateSet      // set for needs_confirmation
}

// CandidateSet carries everything a human needs to confirm a resolution.
// A confident local match never reaches an offer; it attaches the disc
// immediately, so the sets hold external candidates only.
type CandidateSet struct {
	Barcode     string
	RawTitle    string
	CleanTitle  string
	Year        int // 0 = unknown
	GuessedType catalog.MediaType
	Movies      []radarr.MovieCandidate
	Series      []sonarr.SeriesCandidate
}

// Choice identifies the candidate a human confirmed. The explicit type
// overrides the classifier's guess.
type Choice struct {
	Type       catalog.MediaType
	ExternalID int64
}
