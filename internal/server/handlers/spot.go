// internal/server/handlers/spot.go

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
)

// SpotHandler handles spot-related HTTP requests
type SpotHandler struct {
	repo spot.Repository
}

// NewSpotHandler creates a new spot handler
func NewSpotHandler(repo spot.Repository) *SpotHandler {
	return &SpotHandler{
		repo: repo,
	}
}

// ListSpots returns spots matching the query filters
func (h *SpotHandler) ListSpots(w http.ResponseWriter, r *http.Request) {
	// Parse query parameters
	var filter spot.Filter

	filter.Vibe = r.URL.Query().Get("vibe")
	filter.SearchTerm = r.URL.Query().Get("search")

	if minStr := r.URL.Query().Get("min_rating"); minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid min_rating", err)
			return
		}
		filter.MinRating = min
	}

	if sortStr := r.URL.Query().Get("sort"); sortStr != "" {
		switch spot.SortBy(sortStr) {
		case spot.SortRecent, spot.SortRating, spot.SortPopular:
			filter.SortBy = spot.SortBy(sortStr)
		default:
			respondWithError(w, http.StatusBadRequest, "Unknown sort order", nil)
			return
		}
	}

	// Optional proximity cut
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")
	if latStr != "" && lngStr != "" {
		origin, err := parseCoordinate(latStr, lngStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid location parameters", err)
			return
		}
		filter.Origin = &origin

		filter.MaxDistanceKm = 5.0
		if radiusStr := r.URL.Query().Get("radius"); radiusStr != "" {
			radius, err := strconv.ParseFloat(radiusStr, 64)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid radius", err)
				return
			}
			filter.MaxDistanceKm = radius
		}
	}

	spots, err := h.repo.List(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list spots", err)
		return
	}

	respondWithJSON(w, http.StatusOK, spots)
}

// CreateSpot submits a new spot
func (h *SpotHandler) CreateSpot(w http.ResponseWriter, r *http.Request) {
	var input spot.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := h.repo.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, spot.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to create spot", err)
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

// GetSpot returns a specific spot by ID
func (h *SpotHandler) GetSpot(w http.ResponseWriter, r *http.Request) {
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

	respondWithJSON(w, http.StatusOK, s)
}

// UpdateRatings replaces a spot's community ratings
func (h *SpotHandler) UpdateRatings(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing spot ID", nil)
		return
	}

	var ratings spot.Ratings
	if err := json.NewDecoder(r.Body).Decode(&ratings); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updated, err := h.repo.UpdateRatings(r.Context(), id, ratings)
	if err != nil {
		switch {
		case errors.Is(err, spot.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Spot not found", nil)
		case errors.Is(err, spot.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to update ratings", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

// GetStats returns collection statistics
func (h *SpotHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Stats(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get stats", err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

// parseCoordinate parses a lat/lng query pair.
func parseCoordinate(latStr, lngStr string) (geo.Coordinate, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return geo.Coordinate{}, err
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return geo.Coordinate{}, err
	}
	return geo.Coordinate{Lat: lat, Lng: lng}, nil
}

// respondWithJSON writes a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}

	if err != nil && code >= 500 {
		log.Printf("HTTP %d: %s: %v", code, message, err)
	}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}
