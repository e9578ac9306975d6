// internal/service/location/geocoder.go

package location

import (
	"context"
	"fmt"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
)

// Geocoder resolves coordinates to display addresses.
type Geocoder interface {
	// ReverseGeocode gets a display address from a coordinate.
	ReverseGeocode(ctx context.Context, coord geo.Coordinate) (string, error)
}

// NewGeocoder creates a new instance of a geocoder.
func NewGeocoder() Geocoder {
	return &defaultGeocoder{}
}

// defaultGeocoder is a basic implementation of the Geocoder interface.
type defaultGeocoder struct{}

// ReverseGeocode provides a dummy implementation for reverse geocoding.
func (g *defaultGeocoder) ReverseGeocode(ctx context.Context, coord geo.Coordinate) (string, error) {
	// This should call an actual geocoding API (e.g., Google Maps API, OpenStreetMap, etc.)
	return fmt.Sprintf("%.4f, %.4f, Gwalior, Madhya Pradesh", coord.Lat, coord.Lng), nil
}
