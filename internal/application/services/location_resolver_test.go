package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

func TestResolvePrefersExplicitCoordinate(t *testing.T) {
	geocoder := &stubGeocoder{coord: &entities.Coordinate{Latitude: 1, Longitude: 1}}
	resolver := NewLocationResolverService(geocoder, nil)

	loc := &entities.Coordinate{Latitude: 28.61, Longitude: 77.20}
	got, err := resolver.Resolve(context.Background(), loc, "delhi")

	require.NoError(t, err)
	assert.Equal(t, loc, got)
	assert.Zero(t, geocoder.calls, "explicit coordinates must not be geocoded")
}

func TestResolveRejectsInvalidCoordinate(t *testing.T) {
	resolver := NewLocationResolverService(&stubGeocoder{}, nil)

	_, err := resolver.Resolve(context.Background(), &entities.Coordinate{Latitude: 91, Longitude: 0}, "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestResolveGeocodesFreeText(t *testing.T) {
	want := &entities.Coordinate{Latitude: 19.076, Longitude: 72.8777}
	resolver := NewLocationResolverService(&stubGeocoder{coord: want}, nil)

	got, err := resolver.Resolve(context.Background(), nil, "mumbai")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveGeocodeNoMatch(t *testing.T) {
	resolver := NewLocationResolverService(&stubGeocoder{}, nil)

	_, err := resolver.Resolve(context.Background(), nil, "nowhere-at-all")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeGeocodeFailed))
}

func TestResolveUsesDeviceLocation(t *testing.T) {
	want := &entities.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	resolver := NewLocationResolverService(&stubGeocoder{}, &stubDevice{coord: want})

	got, err := resolver.Resolve(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveDeviceDenied(t *testing.T) {
	device := &stubDevice{err: errors.New("permission denied")}
	resolver := NewLocationResolverService(&stubGeocoder{}, device)

	_, err := resolver.Resolve(context.Background(), nil, "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeLocationUnavailable))
}

func TestResolveNothingProvided(t *testing.T) {
	resolver := NewLocationResolverService(&stubGeocoder{}, nil)

	_, err := resolver.Resolve(context.Background(), nil, "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNoLocation))
}
