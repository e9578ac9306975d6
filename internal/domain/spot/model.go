// internal/domain/spot/model.go

package spot

import (
	"time"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
)

// Vibe is the closed mood classification attached to a spot.
type Vibe string

const (
	VibeRomantic Vibe = "romantic"
	VibeSerene   Vibe = "serene"
	VibeCreative Vibe = "creative"
)

// Vibes lists every valid variant, in display order.
func Vibes() []Vibe {
	return []Vibe{VibeRomantic, VibeSerene, VibeCreative}
}

// Valid reports whether v is one of the closed variants.
func (v Vibe) Valid() bool {
	switch v {
	case VibeRomantic, VibeSerene, VibeCreative:
		return true
	}
	return false
}

// Color returns the marker color for a vibe. Adding a vibe variant without
// extending this switch is a compile-visible omission, not a silent map miss.
func (v Vibe) Color() string {
	switch v {
	case VibeRomantic:
		return "#ec4899"
	case VibeSerene:
		return "#10b981"
	case VibeCreative:
		return "#8b5cf6"
	}
	return "#6b7280"
}

// Icon returns the icon name shown inside a vibe marker.
func (v Vibe) Icon() string {
	switch v {
	case VibeRomantic:
		return "heart"
	case VibeSerene:
		return "leaf"
	case VibeCreative:
		return "palette"
	}
	return "map-pin"
}

// Ratings holds the four community sub-scores, each in [1,5].
type Ratings struct {
	Uniqueness int `json:"uniqueness"`
	Vibe       int `json:"vibe"`
	Safety     int `json:"safety"`
	CrowdLevel int `json:"crowd_level"`
}

// Average is the headline rating. Crowd level is deliberately excluded:
// a low crowd is a feature of a hidden spot, not a quality score.
func (r Ratings) Average() float64 {
	return float64(r.Uniqueness+r.Vibe+r.Safety) / 3
}

// QuietLevel inverts the crowd score for display, so 5 means deserted.
func (r Ratings) QuietLevel() int {
	return 5 - r.CrowdLevel + 1
}

// InBounds reports whether every sub-score sits in [1,5].
func (r Ratings) InBounds() bool {
	for _, s := range []int{r.Uniqueness, r.Vibe, r.Safety, r.CrowdLevel} {
		if s < 1 || s > 5 {
			return false
		}
	}
	return true
}

// Location pairs a coordinate with its informational display address. The
// address never participates in projection or distance math.
type Location struct {
	Coordinate geo.Coordinate `json:"coordinate"`
	Address    string         `json:"address"`
}

// Spot is a single discoverable point of interest with narrative content
// and community ratings.
type Spot struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Story       string    `json:"story"`
	Vibe        Vibe      `json:"vibe"`
	Ratings     Ratings   `json:"ratings"`
	Location    Location  `json:"location"`
	Images      []string  `json:"images"`
	Author      string    `json:"author"`
	Experiences int       `json:"experiences"`
	CreatedAt   time.Time `json:"created_at"`
}

// Input is the submission payload for a new spot. ID, creation time and the
// experience counter are assigned by the repository.
type Input struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Story       string   `json:"story"`
	Vibe        Vibe     `json:"vibe"`
	Ratings     Ratings  `json:"ratings"`
	Location    Location `json:"location"`
	Images      []string `json:"images"`
	Author      string   `json:"author"`
}

// SortBy selects the ordering applied after filtering.
type SortBy string

const (
	SortRecent  SortBy = "recent"
	SortRating  SortBy = "rating"
	SortPopular SortBy = "popular"
)

// Filter defines criteria for listing spots. Zero values mean "skip this
// filter"; the zero SortBy keeps insertion order.
type Filter struct {
	Vibe       string
	MinRating  float64
	SearchTerm string
	SortBy     SortBy

	// Origin plus MaxDistanceKm restricts results to spots within a
	// great-circle radius of a point.
	Origin        *geo.Coordinate
	MaxDistanceKm float64
}

// Stats summarizes the collection for the landing page header.
type Stats struct {
	TotalSpots    int          `json:"total_spots"`
	AverageRating float64      `json:"average_rating"`
	TopVibes      []VibeCount  `json:"top_vibes"`
	RecentSpots   int          `json:"recent_spots"`
}

// VibeCount is one entry of the per-vibe breakdown.
type VibeCount struct {
	Vibe  Vibe `json:"vibe"`
	Count int  `json:"count"`
}
