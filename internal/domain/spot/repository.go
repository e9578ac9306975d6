// internal/domain/spot/repository.go

package spot

import (
	"context"
	"errors"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
)

// Common repository errors.
var (
	// ErrNotFound is returned for lookups of unknown spot IDs.
	ErrNotFound = errors.New("spot not found")

	// ErrInvalidInput is returned when a submission carries an unknown
	// vibe or out-of-bounds ratings.
	ErrInvalidInput = errors.New("invalid spot input")

	// ErrWriteFailed wraps an underlying storage failure during create
	// or update.
	ErrWriteFailed = errors.New("spot write failed")
)

// Repository defines the query interface over the spot collection.
type Repository interface {
	// List returns the spots matching the filter, filtered then sorted,
	// as a fresh slice. The underlying collection is never mutated.
	List(ctx context.Context, filter Filter) ([]Spot, error)

	// GetByID returns a spot by ID, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Spot, error)

	// Create assigns identity and creation time to a submission, stores
	// it and returns the persisted record.
	Create(ctx context.Context, input Input) (*Spot, error)

	// UpdateRatings atomically replaces a spot's ratings, preserving its
	// ID and creation time.
	UpdateRatings(ctx context.Context, id string, ratings Ratings) (*Spot, error)

	// Nearby returns spots within radiusKm of origin, closest first.
	Nearby(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]Spot, error)

	// Stats summarizes the collection.
	Stats(ctx context.Context) (Stats, error)
}
