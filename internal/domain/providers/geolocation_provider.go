package providers

import (
	"context"

	"github.com/kezv166-web/medicare/internal/domain/entities"
)

// GeolocationProvider defines the interface for the external geocoding
// collaborator. It turns free-text location input into a single best-match
// coordinate.
type GeolocationProvider interface {
	// Geocode converts a free-text location to coordinates. A nil
	// coordinate with nil error means the text could not be resolved.
	Geocode(ctx context.Context, address string) (*entities.Coordinate, error)

	// ReverseGeocode converts coordinates to a display address
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// DeviceLocationProvider defines the host-environment collaborator that
// reports the device's current position.
type DeviceLocationProvider interface {
	// CurrentLocation returns the device position, or an error when
	// access is denied or the request times out.
	CurrentLocation(ctx context.Context) (*entities.Coordinate, error)
}
