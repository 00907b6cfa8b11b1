package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/providers"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

const (
	googleNearbyURL    = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	defaultHTTPTimeout = 8 * time.Second
)

// GooglePlacesProvider implements the live FacilityProvider against the
// Google Places Nearby Search API.
type GooglePlacesProvider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewGooglePlacesProvider creates a live places provider. requestsPerSecond
// bounds outbound API calls.
func NewGooglePlacesProvider(apiKey string, requestsPerSecond float64) *GooglePlacesProvider {
	return NewGooglePlacesProviderWithOptions(apiKey, requestsPerSecond, googleNearbyURL, nil)
}

// NewGooglePlacesProviderWithOptions allows overriding base URL and HTTP
// client (used for tests).
func NewGooglePlacesProviderWithOptions(apiKey string, requestsPerSecond float64, baseURL string, httpClient *http.Client) *GooglePlacesProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googleNearbyURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5
	}
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		httpClient: httpClient,
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Source identifies this provider as the live data source
func (p *GooglePlacesProvider) Source() providers.DataSource {
	return providers.DataSourceLive
}

// Nearby fetches facilities around the query center and normalizes them
// into the canonical model. Optional fields the API did not report stay
// nil rather than being coerced to false/zero.
func (p *GooglePlacesProvider) Nearby(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
	if p.apiKey == "" {
		return nil, apperrors.NewExternalError("places api key is not configured", nil)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, apperrors.NewExternalError("places rate limit wait aborted", err)
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%.6f,%.6f", query.Center.Latitude, query.Center.Longitude))
	params.Set("radius", fmt.Sprintf("%d", query.RadiusMeters))
	if apiType := googleTypeFor(query.TypeFilter); apiType != "" {
		params.Set("type", apiType)
	} else {
		params.Set("keyword", "hospital clinic pharmacy")
	}
	params.Set("key", p.apiKey)

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build places request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("places request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewExternalError(fmt.Sprintf("places request returned status %d", resp.StatusCode), nil)
	}

	var payload googleNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewExternalError("failed to decode places response", err)
	}

	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		if payload.ErrorMessage != "" {
			return nil, apperrors.NewExternalError(fmt.Sprintf("places request failed: %s - %s", payload.Status, payload.ErrorMessage), nil)
		}
		return nil, apperrors.NewExternalError(fmt.Sprintf("places request failed: %s", payload.Status), nil)
	}

	facilities := make([]*entities.Facility, 0, len(payload.Results))
	for _, result := range payload.Results {
		facility := normalizeResult(result)
		if facility == nil {
			continue
		}
		facilities = append(facilities, facility)
	}

	return facilities, nil
}

// normalizeResult maps one provider record to the canonical facility model.
// Records with no recognizable healthcare type are dropped.
func normalizeResult(result googleNearbyResult) *entities.Facility {
	types := facilityTypesFor(result.Types)
	if len(types) == 0 {
		return nil
	}

	address := result.Vicinity
	if address == "" {
		address = result.FormattedAddress
	}
	if result.PlaceID == "" || result.Name == "" || address == "" {
		return nil
	}

	facility := &entities.Facility{
		ID:      result.PlaceID,
		Name:    result.Name,
		Address: address,
		Location: entities.Coordinate{
			Latitude:  result.Geometry.Location.Lat,
			Longitude: result.Geometry.Location.Lng,
		},
		Types:       types,
		Rating:      result.Rating,
		RatingCount: result.UserRatingsTotal,
		MapURL: fmt.Sprintf("https://maps.google.com/?q=%f,%f",
			result.Geometry.Location.Lat, result.Geometry.Location.Lng),
	}

	if result.OpeningHours != nil {
		facility.OpenNow = result.OpeningHours.OpenNow
	}

	return facility
}

// googleTypeFor maps a canonical type filter to the API's type parameter.
// Returns empty for the "all" sentinel.
func googleTypeFor(typeFilter string) string {
	switch typeFilter {
	case string(entities.FacilityTypeHospital):
		return "hospital"
	case string(entities.FacilityTypePharmacy):
		return "pharmacy"
	case string(entities.FacilityTypeClinic):
		return "doctor"
	default:
		return ""
	}
}

// facilityTypesFor maps provider type tags onto the canonical set
func facilityTypesFor(tags []string) []entities.FacilityType {
	seen := make(map[entities.FacilityType]bool, 3)
	var types []entities.FacilityType
	add := func(t entities.FacilityType) {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}

	for _, tag := range tags {
		switch tag {
		case "hospital":
			add(entities.FacilityTypeHospital)
		case "pharmacy", "drugstore":
			add(entities.FacilityTypePharmacy)
		case "doctor", "clinic", "dentist", "physiotherapist":
			add(entities.FacilityTypeClinic)
		}
	}

	return types
}

type googleNearbyResponse struct {
	Status       string               `json:"status"`
	ErrorMessage string               `json:"error_message,omitempty"`
	Results      []googleNearbyResult `json:"results"`
}

type googleNearbyResult struct {
	PlaceID          string              `json:"place_id"`
	Name             string              `json:"name"`
	Vicinity         string              `json:"vicinity"`
	FormattedAddress string              `json:"formatted_address"`
	Geometry         googleGeometry      `json:"geometry"`
	Rating           *float64            `json:"rating,omitempty"`
	UserRatingsTotal *int                `json:"user_ratings_total,omitempty"`
	OpeningHours     *googleOpeningHours `json:"opening_hours,omitempty"`
	Types            []string            `json:"types"`
}

type googleGeometry struct {
	Location googleLocation `json:"location"`
}

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googleOpeningHours struct {
	OpenNow *bool `json:"open_now,omitempty"`
}
