package resolve

import (
	"context"

	"github.com/discarr/discarr/internal/catalog"
	"github.com/discarr/discarr/pkg/radarr"
	"github.com/discarr/discarr/pkg/sonarr"
)

//go:generate go run go.uber.org/mock/mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks

// Store is the catalog surface the resolver mutates. All mutating methods are
// atomic per call; the implementation serializes them behind a single writer.
type Store interface {
	All() ([]*catalog.MediaItem, error)
	FindByBarcode(barcode string) (*catalog.MediaItem, error)
	FindByIdentity(t catalog.MediaType, externalID int64) (*catalog.MediaItem, error)
	TogglePhysical(barcode string) (*catalog.MediaItem, error)
	AttachPhysical(item *catalog.MediaItem, barcode string) (*catalog.MediaItem, error)
	Upsert(item *catalog.MediaItem) error
}

// Directory resolves a barcode to its raw commercial title.
type Directory interface {
	Lookup(ctx context.Context, barcode string) (string, error)
}

// MovieProvider is the movie metadata and library-management service.
type MovieProvider interface {
	Search(ctx context.Context, term string) ([]radarr.MovieCandidate, error)
	Register(ctx context.Context, candidate radarr.MovieCandidate, rootPath string, qualityProfileID int) error
}

// SeriesProvider is the series metadata and library-management service.
type SeriesProvider interface {
	Search(ctx context.Context, term string) ([]sonarr.SeriesCandidate, error)
	Register(ctx context.Context, candidate sonarr.SeriesCandidate, rootPath string, qualityProfileID int) error
}
