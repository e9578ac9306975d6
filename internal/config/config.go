// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	NATS        NATSConfig
	Geo         GeoConfig
	Location    LocationConfig
	Spot        SpotConfig
	Map         MapConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
}

// GeoConfig holds the fixed viewport region configuration
type GeoConfig struct {
	CenterLat       float64
	CenterLng       float64
	HalfSpanDegrees float64
	DefaultZoom     float64
}

// LocationConfig holds location provider configuration
type LocationConfig struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// SpotConfig holds spot repository configuration
type SpotConfig struct {
	EventsTopic string
}

// MapConfig holds map viewport configuration
type MapConfig struct {
	EventsTopic string
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		NATS: NATSConfig{
			URL:            getEnv("NATS_URL", "nats://localhost:4222"),
			MaxReconnects:  getEnvAsInt("NATS_MAX_RECONNECTS", 10),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 1*time.Second),
			ConnectTimeout: getEnvAsDuration("NATS_CONNECT_TIMEOUT", 2*time.Second),
		},
		Geo: GeoConfig{
			// Gwalior city center; every spot projects into this box.
			CenterLat:       getEnvAsFloat("GEO_CENTER_LAT", 26.2183),
			CenterLng:       getEnvAsFloat("GEO_CENTER_LNG", 78.1828),
			HalfSpanDegrees: getEnvAsFloat("GEO_HALF_SPAN_DEGREES", 0.04),
			DefaultZoom:     getEnvAsFloat("GEO_DEFAULT_ZOOM", 1.0),
		},
		Location: LocationConfig{
			HighAccuracy: getEnvAsBool("LOCATION_HIGH_ACCURACY", true),
			Timeout:      getEnvAsDuration("LOCATION_TIMEOUT", 10*time.Second),
			MaximumAge:   getEnvAsDuration("LOCATION_MAXIMUM_AGE", 60*time.Second),
		},
		Spot: SpotConfig{
			EventsTopic: getEnv("SPOT_EVENTS_TOPIC", "spots"),
		},
		Map: MapConfig{
			EventsTopic: getEnv("MAP_EVENTS_TOPIC", "map"),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.Geo.HalfSpanDegrees <= 0 {
		return fmt.Errorf("geo half span must be positive")
	}
	if config.Location.Timeout <= 0 {
		return fmt.Errorf("location timeout must be positive")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
