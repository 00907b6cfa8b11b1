package geolocation

import (
	"context"
	"fmt"
	"strings"

	"github.com/kezv166-web/medicare/internal/domain/entities"
)

// MockGeocodingProvider implements a table-driven geocoder for development
// and testing. Lookup is by case-insensitive substring match on a small set
// of known cities.
type MockGeocodingProvider struct{}

// NewMockGeocodingProvider creates a new mock geocoding provider
func NewMockGeocodingProvider() *MockGeocodingProvider {
	return &MockGeocodingProvider{}
}

var mockCities = map[string]entities.Coordinate{
	"delhi":     {Latitude: 28.6139, Longitude: 77.2090},
	"mumbai":    {Latitude: 19.0760, Longitude: 72.8777},
	"bengaluru": {Latitude: 12.9716, Longitude: 77.5946},
	"bangalore": {Latitude: 12.9716, Longitude: 77.5946},
	"chennai":   {Latitude: 13.0827, Longitude: 80.2707},
	"kolkata":   {Latitude: 22.5726, Longitude: 88.3639},
	"hyderabad": {Latitude: 17.3850, Longitude: 78.4867},
}

// Geocode resolves an address against the known-city table. Returns
// (nil, nil) when no city matches, mirroring a "not found" geocoder reply.
func (m *MockGeocodingProvider) Geocode(ctx context.Context, address string) (*entities.Coordinate, error) {
	needle := strings.ToLower(strings.TrimSpace(address))
	if needle == "" {
		return nil, nil
	}

	for city, coord := range mockCities {
		if strings.Contains(needle, city) {
			c := coord
			return &c, nil
		}
	}

	return nil, nil
}

// ReverseGeocode returns a synthetic display address
func (m *MockGeocodingProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	return fmt.Sprintf("%.4f, %.4f", lat, lon), nil
}
