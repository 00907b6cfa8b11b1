package geolocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/providers"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

const (
	googleGeocodeURL       = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultGeocodeCacheTTL = 60 * 60 * 24 * 30
	defaultHTTPTimeout     = 8 * time.Second
)

// GoogleGeocodingProvider implements the GeolocationProvider using the
// Google Maps Geocoding API.
type GoogleGeocodingProvider struct {
	apiKey     string
	httpClient *http.Client
	cache      providers.CacheProvider
	baseURL    string
}

// NewGoogleGeocodingProvider creates a new Google geocoding provider.
func NewGoogleGeocodingProvider(apiKey string, cache providers.CacheProvider) *GoogleGeocodingProvider {
	return NewGoogleGeocodingProviderWithOptions(apiKey, cache, googleGeocodeURL, nil)
}

// NewGoogleGeocodingProviderWithOptions allows overriding base URL and HTTP
// client (used for tests).
func NewGoogleGeocodingProviderWithOptions(apiKey string, cache providers.CacheProvider, baseURL string, httpClient *http.Client) *GoogleGeocodingProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googleGeocodeURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GoogleGeocodingProvider{
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      cache,
		baseURL:    baseURL,
	}
}

// Geocode converts a free-text location to its single best-match
// coordinate. Returns (nil, nil) when the API has no match.
func (g *GoogleGeocodingProvider) Geocode(ctx context.Context, address string) (*entities.Coordinate, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("address is required")
	}

	cacheKey := "geo:v1:geocode:" + hashKey(strings.ToLower(trimmed))
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var coord entities.Coordinate
			if err := json.Unmarshal(cached, &coord); err == nil && coord.Validate() == nil {
				return &coord, nil
			}
		}
	}

	resp, err := g.doRequest(ctx, url.Values{"address": []string{trimmed}})
	if err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, nil
	}

	coord := entities.Coordinate{
		Latitude:  resp.Results[0].Geometry.Location.Lat,
		Longitude: resp.Results[0].Geometry.Location.Lng,
	}

	if g.cache != nil {
		if payload, err := json.Marshal(coord); err == nil {
			_ = g.cache.Set(ctx, cacheKey, payload, defaultGeocodeCacheTTL)
		}
	}

	return &coord, nil
}

// ReverseGeocode converts coordinates to a display address.
func (g *GoogleGeocodingProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	cacheKey := "geo:v1:reverse:" + hashKey(fmt.Sprintf("%.5f,%.5f", lat, lon))
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			return string(cached), nil
		}
	}

	resp, err := g.doRequest(ctx, url.Values{"latlng": []string{fmt.Sprintf("%f,%f", lat, lon)}})
	if err != nil {
		return "", err
	}

	if len(resp.Results) == 0 {
		return "", apperrors.NewNotFoundError("no address for coordinates")
	}

	address := resp.Results[0].FormattedAddress
	if g.cache != nil {
		_ = g.cache.Set(ctx, cacheKey, []byte(address), defaultGeocodeCacheTTL)
	}

	return address, nil
}

func (g *GoogleGeocodingProvider) doRequest(ctx context.Context, params url.Values) (*googleGeocodeResponse, error) {
	if g.apiKey == "" {
		return nil, apperrors.NewExternalError("geocoding api key is not configured", nil)
	}

	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build geocode request", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("geocode request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewExternalError(fmt.Sprintf("geocode request returned status %d", resp.StatusCode), nil)
	}

	var payload googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewExternalError("failed to decode geocode response", err)
	}

	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		if payload.ErrorMessage != "" {
			return nil, apperrors.NewExternalError(fmt.Sprintf("geocode request failed: %s - %s", payload.Status, payload.ErrorMessage), nil)
		}
		return nil, apperrors.NewExternalError(fmt.Sprintf("geocode request failed: %s", payload.Status), nil)
	}

	return &payload, nil
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

type googleGeocodeResponse struct {
	Status       string                `json:"status"`
	ErrorMessage string                `json:"error_message,omitempty"`
	Results      []googleGeocodeResult `json:"results"`
}

type googleGeocodeResult struct {
	FormattedAddress string         `json:"formatted_address"`
	Geometry         googleGeometry `json:"geometry"`
}

type googleGeometry struct {
	Location googleLocation `json:"location"`
}

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
