// internal/domain/geo/model.go

package geo

import "math"

// EarthRadiusKm is the mean radius of the Earth used for great-circle math.
const EarthRadiusKm = 6371.0

// Coordinate represents a geographic point. It is passed by value.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds describes the fixed region a viewport projects into: a center
// coordinate plus a half-span in degrees applied to both axes.
type Bounds struct {
	Center          Coordinate
	HalfSpanDegrees float64
}

// ProjectedPoint is a viewport position in percent, where (50, 50) is the
// center of the bounds.
type ProjectedPoint struct {
	XPercent float64 `json:"x_percent"`
	YPercent float64 `json:"y_percent"`
}

// DefaultBounds returns the Gwalior city region every spot is projected into.
func DefaultBounds() Bounds {
	return Bounds{
		Center:          Coordinate{Lat: 26.2183, Lng: 78.1828},
		HalfSpanDegrees: 0.04,
	}
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// DistanceKm calculates the haversine great-circle distance between two
// coordinates in kilometers. The result is symmetric and zero for
// identical points.
func DistanceKm(a, b Coordinate) float64 {
	dLat := ToRadians(b.Lat - a.Lat)
	dLon := ToRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(ToRadians(a.Lat))*math.Cos(ToRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// Project linear-maps a coordinate into a 0-100% viewport position.
// Longitude maps to x and inverted latitude maps to y, so that north is up
// and the bounds center lands on (50, 50). Points outside the bounds span
// project outside [0, 100]; callers decide whether to draw them.
func Project(p Coordinate, b Bounds) ProjectedPoint {
	return ProjectedPoint{
		XPercent: 50 + (p.Lng-b.Center.Lng)/b.HalfSpanDegrees*50,
		YPercent: 50 - (p.Lat-b.Center.Lat)/b.HalfSpanDegrees*50,
	}
}
