// internal/service/spot/repository.go

package spot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
)

// PlaceholderImage is substituted when a submission carries no images.
const PlaceholderImage = "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=800&h=600&fit=crop"

// recentWindow is how far back Stats counts a spot as recent.
const recentWindow = 7 * 24 * time.Hour

// RepositoryConfig contains configuration for the spot repository.
type RepositoryConfig struct {
	EventsTopic string
}

// Repository is the in-memory spot collection behind the query interface.
// Reads take a snapshot under a read lock; Create appends under the write
// lock so a record is either fully visible or not at all.
type Repository struct {
	eventBus *nats.Conn
	config   RepositoryConfig
	now      func() time.Time

	mu    sync.RWMutex
	spots []spot.Spot
}

// NewRepository creates a repository seeded with the given spots. A nil
// event bus disables event publication.
func NewRepository(seed []spot.Spot, eventBus *nats.Conn, config RepositoryConfig) *Repository {
	if config.EventsTopic == "" {
		config.EventsTopic = "spots"
	}
	return &Repository{
		eventBus: eventBus,
		config:   config,
		now:      time.Now,
		spots:    append([]spot.Spot(nil), seed...),
	}
}

// List returns the spots matching the filter as a fresh slice. Filters
// apply in order: vibe, minimum average rating, substring search,
// proximity, then sort.
func (r *Repository) List(ctx context.Context, filter spot.Filter) ([]spot.Spot, error) {
	r.mu.RLock()
	filtered := make([]spot.Spot, 0, len(r.spots))
	for _, s := range r.spots {
		if matches(s, filter) {
			filtered = append(filtered, s)
		}
	}
	r.mu.RUnlock()

	sortSpots(filtered, filter.SortBy)
	return filtered, nil
}

// matches applies every non-zero filter criterion to one spot.
func matches(s spot.Spot, filter spot.Filter) bool {
	if filter.Vibe != "" && filter.Vibe != "all" && string(s.Vibe) != filter.Vibe {
		return false
	}

	// Crowd level is excluded from the average on purpose.
	if filter.MinRating > 0 && s.Ratings.Average() < filter.MinRating {
		return false
	}

	if filter.SearchTerm != "" {
		term := strings.ToLower(filter.SearchTerm)
		if !strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.Description), term) &&
			!strings.Contains(strings.ToLower(s.Story), term) &&
			!strings.Contains(strings.ToLower(s.Location.Address), term) {
			return false
		}
	}

	if filter.Origin != nil && filter.MaxDistanceKm > 0 {
		if geo.DistanceKm(*filter.Origin, s.Location.Coordinate) > filter.MaxDistanceKm {
			return false
		}
	}

	return true
}

// sortSpots orders spots in place. The zero SortBy keeps insertion order;
// every sort is stable so ties keep their original order.
func sortSpots(spots []spot.Spot, by spot.SortBy) {
	switch by {
	case spot.SortRecent:
		sort.SliceStable(spots, func(i, j int) bool {
			return spots[i].CreatedAt.After(spots[j].CreatedAt)
		})
	case spot.SortRating:
		sort.SliceStable(spots, func(i, j int) bool {
			return spots[i].Ratings.Average() > spots[j].Ratings.Average()
		})
	case spot.SortPopular:
		sort.SliceStable(spots, func(i, j int) bool {
			return spots[i].Experiences > spots[j].Experiences
		})
	}
}

// GetByID returns a spot by ID, or spot.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*spot.Spot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.spots {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, spot.ErrNotFound
}

// Create validates a submission, assigns identity and creation time, and
// appends it to the collection. The stored record is returned and a
// created event is published.
func (r *Repository) Create(ctx context.Context, input spot.Input) (*spot.Spot, error) {
	if !input.Vibe.Valid() {
		return nil, fmt.Errorf("%w: unknown vibe %q", spot.ErrInvalidInput, input.Vibe)
	}
	if !input.Ratings.InBounds() {
		return nil, fmt.Errorf("%w: ratings must be within [1,5]", spot.ErrInvalidInput)
	}

	images := input.Images
	if len(images) == 0 {
		images = []string{PlaceholderImage}
	}

	s := spot.Spot{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Story:       input.Story,
		Vibe:        input.Vibe,
		Ratings:     input.Ratings,
		Location:    input.Location,
		Images:      images,
		Author:      input.Author,
		Experiences: 0,
		CreatedAt:   r.now(),
	}

	r.mu.Lock()
	r.spots = append(r.spots, s)
	r.mu.Unlock()

	r.publishEvent("created", s)

	return &s, nil
}

// UpdateRatings replaces a spot's ratings atomically, preserving its ID
// and creation time.
func (r *Repository) UpdateRatings(ctx context.Context, id string, ratings spot.Ratings) (*spot.Spot, error) {
	if !ratings.InBounds() {
		return nil, fmt.Errorf("%w: ratings must be within [1,5]", spot.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.spots {
		if s.ID == id {
			updated := s
			updated.Ratings = ratings
			r.spots[i] = updated
			return &updated, nil
		}
	}
	return nil, spot.ErrNotFound
}

// Nearby returns spots within radiusKm of origin, closest first.
func (r *Repository) Nearby(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]spot.Spot, error) {
	r.mu.RLock()
	nearby := make([]spot.Spot, 0, len(r.spots))
	for _, s := range r.spots {
		if geo.DistanceKm(origin, s.Location.Coordinate) <= radiusKm {
			nearby = append(nearby, s)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(nearby, func(i, j int) bool {
		return geo.DistanceKm(origin, nearby[i].Location.Coordinate) <
			geo.DistanceKm(origin, nearby[j].Location.Coordinate)
	})
	return nearby, nil
}

// Stats summarizes the collection for the landing page header.
func (r *Repository) Stats(ctx context.Context) (spot.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := spot.Stats{TotalSpots: len(r.spots)}
	if len(r.spots) == 0 {
		return stats, nil
	}

	counts := make(map[spot.Vibe]int)
	cutoff := r.now().Add(-recentWindow)

	var totalRating float64
	for _, s := range r.spots {
		totalRating += s.Ratings.Average()
		counts[s.Vibe]++
		if s.CreatedAt.After(cutoff) {
			stats.RecentSpots++
		}
	}
	stats.AverageRating = totalRating / float64(len(r.spots))

	for _, v := range spot.Vibes() {
		if counts[v] > 0 {
			stats.TopVibes = append(stats.TopVibes, spot.VibeCount{Vibe: v, Count: counts[v]})
		}
	}
	sort.SliceStable(stats.TopVibes, func(i, j int) bool {
		return stats.TopVibes[i].Count > stats.TopVibes[j].Count
	})

	return stats, nil
}

// publishEvent publishes a spot event to the event bus. Publication is
// best-effort: a bus failure never fails the write that triggered it.
func (r *Repository) publishEvent(kind string, s spot.Spot) {
	if r.eventBus == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type": kind,
		"spot": s,
		"time": r.now(),
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", kind, err)
		return
	}

	topic := fmt.Sprintf("%s.%s", r.config.EventsTopic, kind)
	if err := r.eventBus.Publish(topic, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", kind, err)
	}
}
