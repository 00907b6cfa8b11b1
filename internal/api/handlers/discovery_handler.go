package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/kezv166-web/medicare/internal/application/services"
	"github.com/kezv166-web/medicare/internal/domain/entities"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

// DiscoveryHandler handles facility discovery HTTP requests
type DiscoveryHandler struct {
	discovery *services.DiscoveryService
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(discovery *services.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discovery: discovery}
}

// NearbyFacilities handles GET /api/facilities/nearby
func (h *DiscoveryHandler) NearbyFacilities(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.discovery.DiscoverAndRank(r.Context(), criteria)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	response := map[string]interface{}{
		"facilities": result.Facilities,
		"count":      len(result.Facilities),
		"source":     result.Source,
	}
	if result.Warning != "" {
		response["warning"] = result.Warning
	}

	respondWithJSON(w, http.StatusOK, response)
}

func parseCriteria(r *http.Request) (*entities.SearchCriteria, error) {
	q := r.URL.Query()

	criteria := &entities.SearchCriteria{
		Query: strings.TrimSpace(q.Get("q")),
	}

	latStr := strings.TrimSpace(q.Get("lat"))
	lonStr := strings.TrimSpace(q.Get("lon"))
	if latStr != "" || lonStr != "" {
		if latStr == "" || lonStr == "" {
			return nil, apperrors.NewValidationError("lat and lon must be provided together")
		}
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid lat parameter")
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid lon parameter")
		}
		criteria.Location = &entities.Coordinate{Latitude: lat, Longitude: lon}
	}

	if radiusStr := strings.TrimSpace(q.Get("radius")); radiusStr != "" {
		radius, err := strconv.Atoi(radiusStr)
		if err != nil || radius <= 0 {
			return nil, apperrors.NewValidationError("radius must be a positive integer")
		}
		criteria.RadiusMeters = radius
	}

	facilityType, err := entities.ParseFacilityType(q.Get("type"))
	if err != nil {
		return nil, err
	}
	criteria.Type = facilityType

	criteria.Specialty = entities.NormalizeSpecialty(q.Get("specialty"))
	if criteria.Specialty == "" {
		criteria.Specialty = entities.SpecialtyFilterAll
	}

	sortBy, err := entities.ParseSortKey(q.Get("sort"))
	if err != nil {
		return nil, err
	}
	criteria.SortBy = sortBy

	criteria.OpenNowOnly, err = parseBoolParam(q.Get("open_now"))
	if err != nil {
		return nil, err
	}
	criteria.BedsOnly, err = parseBoolParam(q.Get("beds"))
	if err != nil {
		return nil, err
	}
	criteria.BloodOnly, err = parseBoolParam(q.Get("blood"))
	if err != nil {
		return nil, err
	}
	criteria.OxygenOnly, err = parseBoolParam(q.Get("oxygen"))
	if err != nil {
		return nil, err
	}

	return criteria, nil
}

func parseBoolParam(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, apperrors.NewValidationError("invalid boolean parameter: " + value)
	}
	return parsed, nil
}

// Helper functions

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps the error taxonomy to HTTP statuses. The error
// type travels in the body so clients can choose the right prompt (manual
// location entry, retry, fix input).
func respondWithAppError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Type {
	case apperrors.ErrorTypeValidation, apperrors.ErrorTypeNoLocation:
		status = http.StatusBadRequest
	case apperrors.ErrorTypeGeocodeFailed:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrorTypeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrorTypeExternal:
		status = http.StatusBadGateway
	case apperrors.ErrorTypeUnavailable, apperrors.ErrorTypeLocationUnavailable:
		status = http.StatusServiceUnavailable
	}

	respondWithJSON(w, status, map[string]string{
		"error": appErr.Message,
		"code":  string(appErr.Type),
	})
}
