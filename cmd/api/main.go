// cmd/api/main.go

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/config"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/server"
	locationService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/location"
	mapviewService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/mapview"
	spotService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/spot"
)

func main() {
	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	natsConn, err := initNATS(cfg.NATS)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsConn.Close()

	// Initialize spot repository with the curated seed collection
	repo := spotService.NewRepository(
		spotService.SeedSpots(),
		natsConn,
		spotService.RepositoryConfig{
			EventsTopic: cfg.Spot.EventsTopic,
		},
	)

	// Initialize location provider over the client-fed position source
	source := locationService.NewChannelSource()
	provider := locationService.NewProvider(source, locationService.ProviderConfig{
		HighAccuracy: cfg.Location.HighAccuracy,
		Timeout:      cfg.Location.Timeout,
		MaximumAge:   cfg.Location.MaximumAge,
	})

	geocoder := locationService.NewGeocoder()

	// Initialize map viewport over the configured region
	viewport := mapviewService.NewViewport(natsConn, mapviewService.ViewportConfig{
		EventsTopic: cfg.Map.EventsTopic,
		Bounds: geo.Bounds{
			Center: geo.Coordinate{
				Lat: cfg.Geo.CenterLat,
				Lng: cfg.Geo.CenterLng,
			},
			HalfSpanDegrees: cfg.Geo.HalfSpanDegrees,
		},
		DefaultZoom: cfg.Geo.DefaultZoom,
	})

	viewport.RegisterSelectionHandler(func(s spot.Spot) {
		log.Printf("Spot selected: %s (%s)", s.Name, s.ID)
	})

	// Initialize HTTP server
	httpServer := server.NewServer(
		cfg,
		natsConn,
		repo,
		viewport,
		provider,
		source,
		geocoder,
	)

	// Start HTTP server
	go func() {
		log.Printf("Starting HTTP server on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	log.Println("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Graceful shutdown
	log.Println("Shutting down services...")

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}

// Initialize NATS connection
func initNATS(cfg config.NATSConfig) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Printf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Printf("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS: %w", err)
	}

	return nc, nil
}
