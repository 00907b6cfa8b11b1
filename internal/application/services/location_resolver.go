package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/providers"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

// LocationResolverService turns the caller's location input into a single
// query coordinate. Explicit coordinates win; free text is geocoded; with
// neither, the device position is requested. Each path maps its failure to
// a distinct error type so callers can prompt appropriately.
type LocationResolverService struct {
	geocoder providers.GeolocationProvider
	device   providers.DeviceLocationProvider
}

// NewLocationResolverService creates a new location resolver. The device
// provider may be nil when the host environment has no position source.
func NewLocationResolverService(
	geocoder providers.GeolocationProvider,
	device providers.DeviceLocationProvider,
) *LocationResolverService {
	return &LocationResolverService{
		geocoder: geocoder,
		device:   device,
	}
}

// Resolve returns the coordinate to search around.
func (s *LocationResolverService) Resolve(ctx context.Context, location *entities.Coordinate, query string) (*entities.Coordinate, error) {
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		return location, nil
	}

	if query != "" {
		coord, err := s.geocoder.Geocode(ctx, query)
		if err != nil {
			return nil, err
		}
		if coord == nil {
			return nil, apperrors.NewGeocodeFailedError("could not resolve location: "+query, nil)
		}
		return coord, nil
	}

	if s.device == nil {
		return nil, apperrors.NewNoLocationError("no location or search text provided")
	}

	coord, err := s.device.CurrentLocation(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("device location request failed")
		return nil, apperrors.NewLocationUnavailableError("device location denied or timed out", err)
	}
	if coord == nil {
		return nil, apperrors.NewLocationUnavailableError("device reported no position", nil)
	}

	return coord, nil
}
