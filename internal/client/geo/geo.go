// Package geo defines the geolocation collaborator contract for the client
// alert controller. The platform geolocation facility is a black box behind
// the Geolocator interface; implementations classify failures into the
// sentinel errors below.
package geo

import (
	"context"
	"errors"
	"time"

	"safesignal/internal/domain"
)

// Classified acquisition failures. ErrUnsupported means the platform has no
// geolocation capability at all, which is the one failure that stops the
// emergency flow from continuing.
var (
	ErrPermissionDenied    = errors.New("permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("acquisition timeout")
	ErrUnsupported         = errors.New("geolocation not supported")
)

// Fix is a single geolocation reading.
type Fix struct {
	Coordinate domain.Coordinate
	// Accuracy radius in meters.
	Accuracy float64
}

// Options controls a single position request.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaximumAge bounds how stale a cached fix may be. Zero forbids cached
	// fixes entirely.
	MaximumAge time.Duration
}

// Geolocator acquires a single position fix.
type Geolocator interface {
	RequestFix(ctx context.Context, opts Options) (Fix, error)
}

// Describe renders a classified failure as a user-facing message.
func Describe(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Location error: Permission denied."
	case errors.Is(err, ErrPositionUnavailable):
		return "Location error: Position unavailable."
	case errors.Is(err, ErrTimeout):
		return "Location error: Timeout."
	case errors.Is(err, ErrUnsupported):
		return "Geolocation not supported."
	default:
		return "Location error."
	}
}
