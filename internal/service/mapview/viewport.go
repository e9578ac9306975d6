// internal/service/mapview/viewport.go

package mapview

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/location"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/mapview"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
)

// ViewportConfig contains configuration for a map viewport.
type ViewportConfig struct {
	EventsTopic string
	Bounds      geo.Bounds
	DefaultZoom float64
}

// Viewport owns the marker interaction state (selection, hover, bounds,
// zoom) and derives renderable marker sets from it. Rendering is an
// explicit recompute: the hosting shell calls Render with the current
// inputs whenever anything changes.
type Viewport struct {
	eventBus *nats.Conn
	config   ViewportConfig

	mu         sync.Mutex
	bounds     geo.Bounds
	zoom       float64
	selectedID string
	hoveredID  string
	handlers   []mapview.SelectionHandler
}

// NewViewport creates a viewport over the configured bounds. A nil event
// bus disables selection event publication.
func NewViewport(eventBus *nats.Conn, config ViewportConfig) *Viewport {
	if config.Bounds.HalfSpanDegrees == 0 {
		config.Bounds = geo.DefaultBounds()
	}
	if config.DefaultZoom == 0 {
		config.DefaultZoom = 1.0
	}
	if config.EventsTopic == "" {
		config.EventsTopic = "map"
	}
	return &Viewport{
		eventBus: eventBus,
		config:   config,
		bounds:   config.Bounds,
		zoom:     config.DefaultZoom,
	}
}

// RegisterSelectionHandler registers a callback invoked with the full spot
// record whenever a marker is selected.
func (v *Viewport) RegisterSelectionHandler(h mapview.SelectionHandler) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.handlers = append(v.handlers, h)
}

// Select marks a spot as the single selected marker, deselecting any
// previous one and clearing its own hover state, then dispatches the
// selection to registered handlers and the event bus.
func (v *Viewport) Select(s spot.Spot) {
	v.mu.Lock()
	v.selectedID = s.ID
	if v.hoveredID == s.ID {
		v.hoveredID = ""
	}
	handlers := append([]mapview.SelectionHandler(nil), v.handlers...)
	v.mu.Unlock()

	for _, h := range handlers {
		h(s)
	}
	v.publishSelected(s)
}

// Hover marks a marker as hovered. Hovering the selected marker is a
// no-op: selection takes visual precedence.
func (v *Viewport) Hover(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if id == v.selectedID {
		return
	}
	v.hoveredID = id
}

// Leave clears the hover state if it still points at the given marker.
func (v *Viewport) Leave(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.hoveredID == id {
		v.hoveredID = ""
	}
}

// Deselect clears the selection.
func (v *Viewport) Deselect() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.selectedID = ""
}

// SetZoom applies a zoom multiplier to the viewport.
func (v *Viewport) SetZoom(zoom float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if zoom > 0 {
		v.zoom = zoom
	}
}

// Reset restores the bounds center and zoom multiplier to their defaults.
// Filter and selection state are untouched.
func (v *Viewport) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.bounds = v.config.Bounds
	v.zoom = v.config.DefaultZoom
}

// State snapshots the viewport's own interaction state, ready to be merged
// with the caller's location and filter inputs for a recompute.
func (v *Viewport) State() mapview.State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return mapview.State{
		SelectedID: v.selectedID,
		HoveredID:  v.hoveredID,
	}
}

// Render derives the renderable marker set for the given spots and state.
// It is a pure function of its inputs and the viewport bounds: markers
// outside the span project outside [0,100] and are still emitted, and a
// failed location never blocks rendering.
func (v *Viewport) Render(spots []spot.Spot, state mapview.State) mapview.View {
	v.mu.Lock()
	bounds := v.bounds
	v.mu.Unlock()

	view := mapview.View{Markers: make([]mapview.Marker, 0, len(spots))}

	if state.LocationErr != nil {
		view.LocationAdvisory = location.Reason(state.LocationErr)
	}

	for _, s := range spots {
		if state.FilterVibe != "" && state.FilterVibe != "all" && string(s.Vibe) != state.FilterVibe {
			continue
		}

		selected := s.ID == state.SelectedID
		marker := mapview.Marker{
			Spot:       s,
			Position:   geo.Project(s.Location.Coordinate, bounds),
			IsSelected: selected,
			// Selection takes precedence over hover on the same marker.
			IsHovered: !selected && s.ID == state.HoveredID,
			Color:     s.Vibe.Color(),
			Icon:      s.Vibe.Icon(),
		}

		if state.UserLocation != nil {
			marker.DistanceLabel = FormatDistance(geo.DistanceKm(*state.UserLocation, s.Location.Coordinate))
		}

		view.Markers = append(view.Markers, marker)
	}

	view.SpotCount = len(view.Markers)
	return view
}

// FormatDistance renders a distance as whole meters below one kilometer
// and as kilometers with one decimal above it.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm", km)
}

// publishSelected publishes a selection event carrying the full spot
// record. Best-effort; the selection itself never fails.
func (v *Viewport) publishSelected(s spot.Spot) {
	if v.eventBus == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type": "selected",
		"spot": s,
		"time": time.Now(),
	})
	if err != nil {
		log.Printf("Failed to marshal selection event: %v", err)
		return
	}

	topic := fmt.Sprintf("%s.selected", v.config.EventsTopic)
	if err := v.eventBus.Publish(topic, payload); err != nil {
		log.Printf("Failed to publish selection event: %v", err)
	}
}
