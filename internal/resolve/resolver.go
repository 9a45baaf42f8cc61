package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/discarr/discarr/internal/catalog"
	"github.com/discarr/discarr/internal/match"
	"github.com/discarr/discarr/internal/title"
	"github.com/discarr/discarr/pkg/radarr"
	"github.com/discarr/discarr/pkg/sonarr"
)

// Config carries the library-management settings for provider registration
// and the pending-confirmation TTL.
type Config struct {
	MovieRoot     string
	SeriesRoot    string
	MovieProfile  int
	SeriesProfile int
	ConfirmTTL    time.Duration
}

// Resolver runs the barcode resolution state machine. It is safe for
// concurrent use: catalog mutations are serialized inside the Store, and the
// pending registry has its own lock.
type Resolver struct {
	store     Store
	directory Directory
	movies    MovieProvider
	series    SeriesProvider
	pending   *pendingRegistry
	cfg       Config
	log       *slog.Logger
}

// New creates a Resolver.
func New(store Store, directory Directory, movies MovieProvider, series SeriesProvider, cfg Config, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		store:     store,
		directory: directory,
		movies:    movies,
		series:    series,
		pending:   newPendingRegistry(cfg.ConfirmTTL),
		cfg:       cfg,
		log:       log.With("component", "resolver"),
	}
}

// ResolveAutonomous resolves a device-scanned barcode, committing the best
// external candidate without human confirmation.
func (r *Resolver) ResolveAutonomous(ctx context.Context, barcode string) (*Outcome, error) {
	return r.resolve(ctx, barcode, false)
}

// ResolveInteractive resolves a request-driven barcode. Instead of
// auto-committing an external candidate it returns ranked candidate sets and
// parks the resolution until Confirm supplies a choice.
func (r *Resolver) ResolveInteractive(ctx context.Context, barcode string) (*Outcome, error) {
	return r.resolve(ctx, barcode, true)
}

// resolve walks the state machine. The returned error is non-nil only for
// persistence failures; every lookup or search failure degrades to a
// not_found outcome with the cause as its reason.
func (r *Resolver) resolve(ctx context.Context, barcode string, interactive bool) (*Outcome, error) {
	// CheckBarcode: a re-scan of a known disc toggles rather than duplicates.
	if existing, err := r.store.FindByBarcode(barcode); err == nil {
		toggled, err := r.store.TogglePhysical(barcode)
		if err != nil {
			return nil, fmt.Errorf("toggle %s: %w", barcode, err)
		}
		r.log.Info("barcode re-scan toggled item",
			"barcode", barcode, "title", existing.Title, "has_physical", toggled.HasPhysical)
		return &Outcome{Status: StatusToggled, Item: toggled}, nil
	} else if !errors.Is(err, catalog.ErrNotFound) {
		return nil, err
	}

	// LookupTitle.
	raw, err := r.directory.Lookup(ctx, barcode)
	if err != nil {
		r.log.Info("barcode unresolved", "barcode", barcode, "reason", err)
		return &Outcome{Status: StatusNotFound, Reason: err}, nil
	}

	cleaned := title.Clean(raw)
	year, hasYear := title.ExtractYear(raw)
	guessed := title.GuessType(raw)
	r.log.Debug("title resolved",
		"barcode", barcode, "raw", raw, "clean", cleaned, "year", year, "type", guessed)

	// LocalMatch. The type guess is a heuristic, so the local search is not
	// filtered by it; a series disc with no keyword in its label must still
	// match its series row.
	items, err := r.store.All()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	opts := match.Options{}
	if hasYear {
		opts.Year = &year
	}
	local := match.Search(items, cleaned, opts)
	if len(local) > 0 {
		updated, err := r.store.AttachPhysical(local[0].Item, barcode)
		if err != nil {
			return nil, fmt.Errorf("attach %s: %w", barcode, err)
		}
		r.log.Info("local match updated",
			"barcode", barcode, "title", updated.Title, "score", local[0].Score)
		return &Outcome{Status: StatusUpdated, Item: updated}, nil
	}

	// ExternalSearch.
	if interactive {
		return r.offerCandidates(ctx, barcode, raw, cleaned, year, guessed)
	}
	return r.autoCommit(ctx, barcode, cleaned, year, guessed)
}

// autoCommit picks the best external candidate and persists it.
func (r *Resolver) autoCommit(ctx context.Context, barcode, cleaned string, year int, guessed catalog.MediaType) (*Outcome, error) {
	if guessed == catalog.TypeSeries {
		ranked := rankSeries(r.searchSeries(ctx, cleaned))
		if len(ranked) == 0 {
			return &Outcome{Status: StatusNotFound, Reason: ErrNoCandidate}, nil
		}
		return r.commitSeries(ctx, barcode, ranked[0])
	}

	ranked := rankMovies(r.searchMovies(ctx, cleaned), year)
	if len(ranked) == 0 {
		return &Outcome{Status: StatusNotFound, Reason: ErrNoCandidate}, nil
	}
	return r.commitMovie(ctx, barcode, ranked[0])
}

// offerCandidates parks the resolution and returns ranked candidates.
func (r *Resolver) offerCandidates(ctx context.Context, barcode, raw, cleaned string, year int, guessed catalog.MediaType) (*Outcome, error) {
	set := &CandidateSet{
		Barcode:     barcode,
		RawTitle:    raw,
		CleanTitle:  cleaned,
		Year:        year,
		GuessedType: guessed,
	}
	if guessed == catalog.TypeSeries {
		set.Series = rankSeries(r.searchSeries(ctx, cleaned))
	} else {
		set.Movies = rankMovies(r.searchMovies(ctx, cleaned), year)
	}

	if len(set.Movies) == 0 && len(set.Series) == 0 {
		return &Outcome{Status: StatusNotFound, Reason: ErrNoCandidate}, nil
	}

	r.pending.put(barcode, set)
	r.log.Info("resolution awaiting confirmation",
		"barcode", barcode, "title", cleaned,
		"movies", len(set.Movies), "series", len(set.Series))
	return &Outcome{Status: StatusNeedsConfirmation, Candidates: set}, nil
}

// Confirm consumes the pending candidate set for the barcode and persists the
// chosen candidate exactly as the autonomous path would.
func (r *Resolver) Confirm(ctx context.Context, barcode string, choice Choice) (*Outcome, error) {
	set, err := r.pending.take(barcode)
	if err != nil {
		return nil, err
	}

	switch choice.Type {
	case catalog.TypeMovie:
		for _, c := range set.Movies {
			if c.TMDBID == choice.ExternalID {
				return r.commitMovie(ctx, barcode, c)
			}
		}
	case catalog.TypeSeries:
		for _, c := range set.Series {
			if c.TVDBID == choice.ExternalID {
				return r.commitSeries(ctx, barcode, c)
			}
		}
	}

	// Put the set back so a mistyped id doesn't destroy the offer.
	r.pending.put(barcode, set)
	return nil, ErrUnknownCandidate
}

// commitMovie updates the existing catalog row for the candidate's identity
// key, or registers the movie with the provider and inserts a new row.
func (r *Resolver) commitMovie(ctx context.Context, barcode string, c radarr.MovieCandidate) (*Outcome, error) {
	if existing, err := r.store.FindByIdentity(catalog.TypeMovie, c.TMDBID); err == nil {
		updated, err := r.store.AttachPhysical(existing, barcode)
		if err != nil {
			return nil, fmt.Errorf("attach %s: %w", barcode, err)
		}
		r.log.Info("known movie gained disc", "barcode", barcode, "title", updated.Title)
		return &Outcome{Status: StatusUpdated, Item: updated}, nil
	} else if !errors.Is(err, catalog.ErrNotFound) {
		return nil, err
	}

	if err := r.movies.Register(ctx, c, r.cfg.MovieRoot, r.cfg.MovieProfile); err != nil {
		if errors.Is(err, radarr.ErrAlreadyExists) {
			r.log.Debug("movie already registered", "tmdb_id", c.TMDBID)
		} else {
			// Registration is best-effort; the catalog insert still proceeds.
			r.log.Warn("movie registration failed", "tmdb_id", c.TMDBID, "error", err)
		}
	}

	item := &catalog.MediaItem{
		Type:        catalog.TypeMovie,
		Title:       c.Title,
		Year:        c.Year,
		TMDBID:      &c.TMDBID,
		HasPhysical: true,
		Barcode:     &barcode,
		Source:      catalog.SourceBarcode,
		Genres:      c.Genres,
	}
	if err := r.store.Upsert(item); err != nil {
		return nil, fmt.Errorf("insert movie %q: %w", c.Title, err)
	}
	r.log.Info("movie added from scan", "barcode", barcode, "title", c.Title, "year", c.Year)
	return &Outcome{Status: StatusAdded, Item: item}, nil
}

// commitSeries mirrors commitMovie for the series provider.
func (r *Resolver) commitSeries(ctx context.Context, barcode string, c sonarr.SeriesCandidate) (*Outcome, error) {
	if existing, err := r.store.FindByIdentity(catalog.TypeSeries, c.TVDBID); err == nil {
		updated, err := r.store.AttachPhysical(existing, barcode)
		if err != nil {
			return nil, fmt.Errorf("attach %s: %w", barcode, err)
		}
		r.log.Info("known series gained disc", "barcode", barcode, "title", updated.Title)
		return &Outcome{Status: StatusUpdated, Item: updated}, nil
	} else if !errors.Is(err, catalog.ErrNotFound) {
		return nil, err
	}

	if err := r.series.Register(ctx, c, r.cfg.SeriesRoot, r.cfg.SeriesProfile); err != nil {
		if errors.Is(err, sonarr.ErrAlreadyExists) {
			r.log.Debug("series already registered", "tvdb_id", c.TVDBID)
		} else {
			r.log.Warn("series registration failed", "tvdb_id", c.TVDBID, "error", err)
		}
	}

	seasons := c.SeasonCount()
	item := &catalog.MediaItem{
		Type:        catalog.TypeSeries,
		Title:       c.Title,
		Year:        c.Year,
		TVDBID:      &c.TVDBID,
		SeasonCount: &seasons,
		HasPhysical: true,
		Barcode:     &barcode,
		Source:      catalog.SourceBarcode,
		Genres:      c.Genres,
	}
	if err := r.store.Upsert(item); err != nil {
		return nil, fmt.Errorf("insert series %q: %w", c.Title, err)
	}
	r.log.Info("series added from scan", "barcode", barcode, "title", c.Title, "seasons", seasons)
	return &Outcome{Status: StatusAdded, Item: item}, nil
}

// SweepPending drops confirmations that idled past the TTL.
func (r *Resolver) SweepPending() {
	if removed := r.pending.sweep(); removed > 0 {
		r.log.Info("expired pending resolutions dropped", "count", removed)
	}
}
