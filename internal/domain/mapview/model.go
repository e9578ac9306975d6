// internal/domain/mapview/model.go

package mapview

import (
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
)

// Marker is the renderable view model for one spot on the map.
type Marker struct {
	Spot     spot.Spot          `json:"spot"`
	Position geo.ProjectedPoint `json:"position"`

	// DistanceLabel is a preformatted distance from the user's location
	// ("743m", "2.5km"). Empty when no user location is known.
	DistanceLabel string `json:"distance_label,omitempty"`

	IsSelected bool `json:"is_selected"`
	IsHovered  bool `json:"is_hovered"`

	// Color and Icon come from the spot's vibe mapping so clients do not
	// need their own vibe switch.
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// State is the full input to a marker recompute. The hosting shell owns it
// and passes it in whenever anything changes; rendering itself holds no
// hidden reactive state.
type State struct {
	UserLocation *geo.Coordinate

	// LocationErr is the terminal error of the last location attempt,
	// nil when none was made or it succeeded. Rendering never blocks on
	// it; it only drives the advisory text.
	LocationErr error

	FilterVibe string
	SelectedID string
	HoveredID  string
}

// View is the derived output of one recompute.
type View struct {
	Markers   []Marker `json:"markers"`
	SpotCount int      `json:"spot_count"`

	// LocationAdvisory carries the user-visible denied/unavailable text.
	// Empty when a user location is known or none was requested.
	LocationAdvisory string `json:"location_advisory,omitempty"`
}

// SelectionHandler consumes "spot selected" events dispatched by the
// viewport to the surrounding presentation layer.
type SelectionHandler func(s spot.Spot)
