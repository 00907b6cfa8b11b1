package geolocation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Connaught Place, Delhi", r.URL.Query().Get("address"))
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"formatted_address": "Connaught Place, New Delhi, Delhi, India",
					"geometry": {"location": {"lat": 28.6315, "lng": 77.2167}}
				}
			]
		}`))
	}))
	defer server.Close()

	g := NewGoogleGeocodingProviderWithOptions("test-key", nil, server.URL, server.Client())

	coord, err := g.Geocode(context.Background(), "Connaught Place, Delhi")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 28.6315, coord.Latitude, 1e-9)
	assert.InDelta(t, 77.2167, coord.Longitude, 1e-9)
}

func TestGoogleGeocodeNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	g := NewGoogleGeocodingProviderWithOptions("test-key", nil, server.URL, server.Client())

	coord, err := g.Geocode(context.Background(), "nowhere at all")
	require.NoError(t, err)
	assert.Nil(t, coord)
}

func TestGoogleGeocodeEmptyAddress(t *testing.T) {
	g := NewGoogleGeocodingProvider("test-key", nil)
	_, err := g.Geocode(context.Background(), "   ")
	require.Error(t, err)
}

func TestGoogleReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("latlng"))
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"formatted_address": "Saket, New Delhi, Delhi, India", "geometry": {"location": {"lat": 28.52, "lng": 77.21}}}]
		}`))
	}))
	defer server.Close()

	g := NewGoogleGeocodingProviderWithOptions("test-key", nil, server.URL, server.Client())

	address, err := g.ReverseGeocode(context.Background(), 28.52, 77.21)
	require.NoError(t, err)
	assert.Equal(t, "Saket, New Delhi, Delhi, India", address)
}

func TestMockGeocode(t *testing.T) {
	m := NewMockGeocodingProvider()

	coord, err := m.Geocode(context.Background(), "Andheri West, Mumbai")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 19.0760, coord.Latitude, 1e-9)

	coord, err = m.Geocode(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Nil(t, coord)
}
