// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/config"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/server/handlers"
	locationService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/location"
	mapviewService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/mapview"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.Config,
	natsConn *nats.Conn,
	repo spot.Repository,
	viewport *mapviewService.Viewport,
	provider *locationService.Provider,
	source *locationService.ChannelSource,
	geocoder locationService.Geocoder,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	spotHandler := handlers.NewSpotHandler(repo)
	mapHandler := handlers.NewMapHandler(viewport, repo, provider)
	geoHandler := handlers.NewGeoHandler(geocoder)

	// Routes
	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// API version
		r.Route("/v1", func(r chi.Router) {
			// Spots API
			r.Route("/spots", func(r chi.Router) {
				r.Get("/", spotHandler.ListSpots)
				r.Post("/", spotHandler.CreateSpot)
				r.Get("/stats", spotHandler.GetStats)
				r.Get("/{id}", spotHandler.GetSpot)
				r.Put("/{id}/ratings", spotHandler.UpdateRatings)
			})

			// Map API
			r.Route("/map", func(r chi.Router) {
				r.Get("/markers", mapHandler.GetMarkers)
				r.Post("/reset", mapHandler.ResetView)
				r.Post("/spots/{id}/select", mapHandler.SelectSpot)
				r.Post("/spots/{id}/hover", mapHandler.HoverSpot)
				r.Post("/spots/{id}/leave", mapHandler.LeaveSpot)
			})

			// Geo API
			r.Route("/geo", func(r chi.Router) {
				r.Get("/reverse", geoHandler.ReverseGeocode)
			})
		})
	})

	// WebSocket endpoint for real-time map interaction
	router.Get("/ws/map", handlers.MapWebSocketHandler(handlers.MapSocketDeps{
		NatsConn: natsConn,
		Viewport: viewport,
		Repo:     repo,
		Source:   source,
		ProviderConfig: locationService.ProviderConfig{
			HighAccuracy: cfg.Location.HighAccuracy,
			Timeout:      cfg.Location.Timeout,
			MaximumAge:   cfg.Location.MaximumAge,
		},
		SpotsTopic: cfg.Spot.EventsTopic,
		MapTopic:   cfg.Map.EventsTopic,
	}))

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
