// internal/domain/location/provider.go

package location

import (
	"context"
	"errors"
	"time"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
)

// PermissionStatus reports the platform's location permission state.
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
	PermissionPrompt  PermissionStatus = "prompt"
	PermissionUnknown PermissionStatus = "unknown"
)

// Position is a location fix obtained from a Source.
type Position struct {
	Coordinate geo.Coordinate
	// Accuracy is the radius of uncertainty in meters, zero when unknown.
	Accuracy  float64
	Timestamp time.Time
}

// Options configures a position request.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaximumAge allows a cached fix no older than this to satisfy the
	// request without a new hardware read.
	MaximumAge time.Duration
}

// Source is the platform geolocation capability. Any host exposing
// current-position, watch, clear-watch and permission-query semantics can
// be plugged in.
type Source interface {
	// CurrentPosition resolves a single best-effort fix.
	CurrentPosition(ctx context.Context, opts Options) (Position, error)

	// WatchPosition begins continuous updates, invoking cb for each fix
	// until ClearWatch is called with the returned id.
	WatchPosition(opts Options, cb func(Position)) (int64, error)

	// ClearWatch cancels a running watch. Unknown ids are ignored.
	ClearWatch(id int64)

	// PermissionStatus reports the current permission state. It must not
	// fail; sources without a permission query return PermissionUnknown.
	PermissionStatus(ctx context.Context) PermissionStatus
}

// Error kinds surfaced by providers. Every failed position request maps to
// exactly one of these; callers recover by rendering without a known user
// position.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("location request timed out")
	ErrNotSupported        = errors.New("geolocation is not supported on this platform")
)

// Reason returns a human-readable advisory for a location error, suitable
// for showing next to a map that is rendering without distance labels.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Location access denied. Allow location access to see distances to spots."
	case errors.Is(err, ErrTimeout):
		return "Finding your location took too long. Try again."
	case errors.Is(err, ErrNotSupported):
		return "Location is not available on this device."
	case errors.Is(err, ErrPositionUnavailable):
		return "Your location could not be determined right now."
	default:
		return "Your location is unknown."
	}
}
