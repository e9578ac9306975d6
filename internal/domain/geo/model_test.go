// internal/domain/geo/model_test.go

package geo

import (
	"math"
	"testing"
)

func TestDistanceKmSymmetric(t *testing.T) {
	pairs := []struct {
		a, b Coordinate
	}{
		{Coordinate{26.2295, 78.1691}, Coordinate{26.2144, 78.1869}},
		{Coordinate{0, 0}, Coordinate{45, 90}},
		{Coordinate{-33.8688, 151.2093}, Coordinate{51.5074, -0.1278}},
	}

	for _, p := range pairs {
		ab := DistanceKm(p.a, p.b)
		ba := DistanceKm(p.b, p.a)
		if ab != ba {
			t.Errorf("DistanceKm not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	p := Coordinate{26.2183, 78.1828}
	if d := DistanceKm(p, p); d != 0 {
		t.Errorf("DistanceKm(p, p) = %v, want 0", d)
	}
}

func TestDistanceKmFortToCafe(t *testing.T) {
	// Gwalior Fort sunset point to the Sarafa Bazaar cafe corner.
	fort := Coordinate{Lat: 26.2295, Lng: 78.1691}
	cafe := Coordinate{Lat: 26.2144, Lng: 78.1869}

	d := DistanceKm(fort, cafe)
	if math.Abs(d-2.5) > 0.2 {
		t.Errorf("DistanceKm(fort, cafe) = %v, want ~2.5 +/- 0.2", d)
	}
}

func TestProjectCenter(t *testing.T) {
	b := DefaultBounds()
	p := Project(b.Center, b)
	if p.XPercent != 50 || p.YPercent != 50 {
		t.Errorf("Project(center) = (%v, %v), want (50, 50)", p.XPercent, p.YPercent)
	}
}

func TestProjectAxes(t *testing.T) {
	b := DefaultBounds()

	// East edge of the span maps to the right edge.
	east := Coordinate{Lat: b.Center.Lat, Lng: b.Center.Lng + b.HalfSpanDegrees}
	if p := Project(east, b); math.Abs(p.XPercent-100) > 1e-9 || math.Abs(p.YPercent-50) > 1e-9 {
		t.Errorf("Project(east) = (%v, %v), want (100, 50)", p.XPercent, p.YPercent)
	}

	// North edge maps to the top edge (inverted latitude).
	north := Coordinate{Lat: b.Center.Lat + b.HalfSpanDegrees, Lng: b.Center.Lng}
	if p := Project(north, b); math.Abs(p.YPercent) > 1e-9 {
		t.Errorf("Project(north).YPercent = %v, want 0", p.YPercent)
	}
}

func TestProjectOutsideSpanIsNotClamped(t *testing.T) {
	b := DefaultBounds()
	far := Coordinate{Lat: b.Center.Lat, Lng: b.Center.Lng + 2*b.HalfSpanDegrees}
	if p := Project(far, b); p.XPercent <= 100 {
		t.Errorf("Project(far).XPercent = %v, want > 100", p.XPercent)
	}
}

func TestToRadians(t *testing.T) {
	if r := ToRadians(180); math.Abs(r-math.Pi) > 1e-12 {
		t.Errorf("ToRadians(180) = %v, want pi", r)
	}
}
