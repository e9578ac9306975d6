// internal/server/handlers/map.go

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/location"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
	locationService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/location"
	mapviewService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/mapview"
)

// MapHandler handles map viewport HTTP requests
type MapHandler struct {
	viewport *mapviewService.Viewport
	repo     spot.Repository
	provider *locationService.Provider
}

// NewMapHandler creates a new map handler
func NewMapHandler(viewport *mapviewService.Viewport, repo spot.Repository, provider *locationService.Provider) *MapHandler {
	return &MapHandler{
		viewport: viewport,
		repo:     repo,
		provider: provider,
	}
}

// GetMarkers recomputes and returns the renderable marker set. The user
// location comes from the lat/lng query pair when present, else from the
// provider's last known fix; a missing location never blocks the response.
func (h *MapHandler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	spots, err := h.repo.List(r.Context(), spot.Filter{})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list spots", err)
		return
	}

	// Start from the viewport's own selection/hover state and let query
	// parameters override it.
	state := h.viewport.State()
	state.FilterVibe = r.URL.Query().Get("vibe")
	if selected := r.URL.Query().Get("selected"); selected != "" {
		state.SelectedID = selected
	}
	if hovered := r.URL.Query().Get("hovered"); hovered != "" {
		state.HoveredID = hovered
	}

	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")
	switch {
	case latStr != "" && lngStr != "":
		coord, err := parseCoordinate(latStr, lngStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid location parameters", err)
			return
		}
		state.UserLocation = &coord
	default:
		state.UserLocation = h.provider.LastKnown()
		if state.UserLocation == nil {
			// Pre-empt a doomed request: a denied permission is the
			// only status we can report without blocking.
			if h.provider.GetPermissionStatus(r.Context()) == location.PermissionDenied {
				state.LocationErr = location.ErrPermissionDenied
			}
		}
	}

	respondWithJSON(w, http.StatusOK, h.viewport.Render(spots, state))
}

// SelectSpot marks a spot as selected and dispatches the selection event
func (h *MapHandler) SelectSpot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing spot ID", nil)
		return
	}

	s, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, spot.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Spot not found", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to get spot", err)
		}
		return
	}

	h.viewport.Select(*s)

	respondWithJSON(w, http.StatusOK, s)
}

// HoverSpot marks a spot marker as hovered
func (h *MapHandler) HoverSpot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing spot ID", nil)
		return
	}

	h.viewport.Hover(id)
	respondWithJSON(w, http.StatusOK, interactionState(h.viewport))
}

// LeaveSpot clears the hover state for a spot marker
func (h *MapHandler) LeaveSpot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing spot ID", nil)
		return
	}

	h.viewport.Leave(id)
	respondWithJSON(w, http.StatusOK, interactionState(h.viewport))
}

// ResetView restores the default bounds and zoom. Filter and selection
// survive a reset.
func (h *MapHandler) ResetView(w http.ResponseWriter, r *http.Request) {
	h.viewport.Reset()
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// interactionState is the wire shape of the viewport's selection/hover
// state returned by the interaction endpoints.
func interactionState(v *mapviewService.Viewport) map[string]string {
	state := v.State()
	return map[string]string{
		"selected_id": state.SelectedID,
		"hovered_id":  state.HoveredID,
	}
}
