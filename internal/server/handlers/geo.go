// internal/server/handlers/geo.go

package handlers

import (
	"net/http"

	locationService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/location"
)

// GeoHandler handles geospatial HTTP requests
type GeoHandler struct {
	geocoder locationService.Geocoder
}

// NewGeoHandler creates a new geo handler
func NewGeoHandler(geocoder locationService.Geocoder) *GeoHandler {
	return &GeoHandler{
		geocoder: geocoder,
	}
}

// ReverseGeocode returns a display address for a coordinate
func (h *GeoHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")

	if latStr == "" || lngStr == "" {
		respondWithError(w, http.StatusBadRequest, "Missing location parameters", nil)
		return
	}

	coord, err := parseCoordinate(latStr, lngStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid location parameters", err)
		return
	}

	address, err := h.geocoder.ReverseGeocode(r.Context(), coord)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reverse geocode", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"address": address})
}
