// internal/server/handlers/spot_test.go

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/mapview"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
	locationService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/location"
	mapviewService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/mapview"
	spotService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/spot"
)

func testSpots() []spot.Spot {
	return []spot.Spot{
		{
			ID:          "fort",
			Name:        "Fort Wall Sunset Point",
			Description: "Quiet stretch of the fort wall",
			Vibe:        spot.VibeSerene,
			Ratings:     spot.Ratings{Uniqueness: 5, Vibe: 5, Safety: 4, CrowdLevel: 1},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.2295, Lng: 78.1691},
				Address:    "Gwalior Fort, Gwalior",
			},
			Author:    "aarav",
			CreatedAt: time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "cafe",
			Name:        "Old City Rooftop Cafe",
			Description: "Chai with a view of the old city",
			Vibe:        spot.VibeRomantic,
			Ratings:     spot.Ratings{Uniqueness: 4, Vibe: 5, Safety: 5, CrowdLevel: 2},
			Location: spot.Location{
				Coordinate: geo.Coordinate{Lat: 26.2144, Lng: 78.1869},
				Address:    "Sarafa Bazaar, Gwalior",
			},
			Author:    "meera",
			CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

// testRouter wires the handlers the way the server does, without NATS or a
// live position source.
func testRouter(t *testing.T) *chi.Mux {
	t.Helper()

	repo := spotService.NewRepository(testSpots(), nil, spotService.RepositoryConfig{})
	source := locationService.NewChannelSource()
	provider := locationService.NewProvider(source, locationService.DefaultProviderConfig())
	viewport := mapviewService.NewViewport(nil, mapviewService.ViewportConfig{})
	geocoder := locationService.NewGeocoder()

	spotHandler := NewSpotHandler(repo)
	mapHandler := NewMapHandler(viewport, repo, provider)
	geoHandler := NewGeoHandler(geocoder)

	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/spots", func(r chi.Router) {
			r.Get("/", spotHandler.ListSpots)
			r.Post("/", spotHandler.CreateSpot)
			r.Get("/stats", spotHandler.GetStats)
			r.Get("/{id}", spotHandler.GetSpot)
			r.Put("/{id}/ratings", spotHandler.UpdateRatings)
		})
		r.Route("/map", func(r chi.Router) {
			r.Get("/markers", mapHandler.GetMarkers)
			r.Post("/reset", mapHandler.ResetView)
			r.Post("/spots/{id}/select", mapHandler.SelectSpot)
			r.Post("/spots/{id}/hover", mapHandler.HoverSpot)
			r.Post("/spots/{id}/leave", mapHandler.LeaveSpot)
		})
		r.Route("/geo", func(r chi.Router) {
			r.Get("/reverse", geoHandler.ReverseGeocode)
		})
	})

	return router
}

func doRequest(t *testing.T, router http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListSpotsFiltersByVibe(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/spots?vibe=serene", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var spots []spot.Spot
	if err := json.Unmarshal(rec.Body.Bytes(), &spots); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(spots) != 1 || spots[0].ID != "fort" {
		t.Fatalf("got %d spots, want only the serene fort", len(spots))
	}
}

func TestListSpotsRejectsUnknownSort(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/spots?sort=alphabetical", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateSpot(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(spot.Input{
		Name:    "Hidden Stepwell",
		Story:   "Found it behind the temple lane.",
		Vibe:    spot.VibeCreative,
		Ratings: spot.Ratings{Uniqueness: 5, Vibe: 4, Safety: 3, CrowdLevel: 1},
		Location: spot.Location{
			Coordinate: geo.Coordinate{Lat: 26.2101, Lng: 78.1755},
			Address:    "Old Town, Gwalior",
		},
		Author: "kabir",
	})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/spots", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created spot.Spot
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created spot has no ID")
	}
	if len(created.Images) == 0 {
		t.Fatal("created spot has no placeholder image")
	}
}

func TestCreateSpotRejectsUnknownVibe(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(spot.Input{
		Name:    "Somewhere",
		Vibe:    "melancholy",
		Ratings: spot.Ratings{Uniqueness: 3, Vibe: 3, Safety: 3, CrowdLevel: 3},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/spots", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetSpotNotFound(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/spots/no-such-spot", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestUpdateRatings(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(spot.Ratings{Uniqueness: 3, Vibe: 3, Safety: 3, CrowdLevel: 5})
	rec := doRequest(t, router, http.MethodPut, "/api/v1/spots/cafe/ratings", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var updated spot.Spot
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if updated.ID != "cafe" || updated.Ratings.CrowdLevel != 5 {
		t.Fatalf("updated = %+v, want cafe with crowd level 5", updated)
	}
}

func TestUpdateRatingsRejectsOutOfBounds(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(spot.Ratings{Uniqueness: 0, Vibe: 3, Safety: 3, CrowdLevel: 3})
	rec := doRequest(t, router, http.MethodPut, "/api/v1/spots/cafe/ratings", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetStats(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/spots/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var stats spot.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if stats.TotalSpots != 2 {
		t.Fatalf("TotalSpots = %d, want 2", stats.TotalSpots)
	}
}

func TestGetMarkersWithQueryLocation(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/map/markers?lat=26.2295&lng=78.1691", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var view mapview.View
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if view.SpotCount != 2 {
		t.Fatalf("SpotCount = %d, want 2", view.SpotCount)
	}
	for _, m := range view.Markers {
		if m.DistanceLabel == "" {
			t.Fatalf("marker %s has no distance label", m.Spot.ID)
		}
	}
}

func TestGetMarkersWithoutLocationStillRenders(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/map/markers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var view mapview.View
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if view.SpotCount != 2 {
		t.Fatalf("SpotCount = %d, want 2", view.SpotCount)
	}
	for _, m := range view.Markers {
		if m.DistanceLabel != "" {
			t.Fatalf("marker %s has distance label %q without a location", m.Spot.ID, m.DistanceLabel)
		}
	}
}

func TestSelectSpotMarksMarker(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/map/spots/fort/select", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("select status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/v1/map/markers", nil)
	var view mapview.View
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	var selected int
	for _, m := range view.Markers {
		if m.IsSelected {
			selected++
			if m.Spot.ID != "fort" {
				t.Fatalf("selected marker = %s, want fort", m.Spot.ID)
			}
		}
	}
	if selected != 1 {
		t.Fatalf("selected markers = %d, want 1", selected)
	}
}

func TestSelectUnknownSpot(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/map/spots/ghost/select", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHoverAndLeave(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/map/spots/cafe/hover", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("hover status = %d, want %d", rec.Code, http.StatusOK)
	}

	var state map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if state["hovered_id"] != "cafe" {
		t.Fatalf("hovered_id = %q, want cafe", state["hovered_id"])
	}

	rec = doRequest(t, router, http.MethodPost, "/api/v1/map/spots/cafe/leave", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if state["hovered_id"] != "" {
		t.Fatalf("hovered_id = %q after leave, want empty", state["hovered_id"])
	}
}

func TestReverseGeocode(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/geo/reverse?lat=26.2183&lng=78.1828", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	want := "26.2183, 78.1828, Gwalior, Madhya Pradesh"
	if resp["address"] != want {
		t.Fatalf("address = %q, want %q", resp["address"], want)
	}
}

func TestReverseGeocodeMissingParams(t *testing.T) {
	router := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/geo/reverse", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
