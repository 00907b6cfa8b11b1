package entities

import (
	"math"

	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

// FacilityType classifies a discoverable healthcare location
type FacilityType string

const (
	FacilityTypeHospital FacilityType = "hospital"
	FacilityTypeClinic   FacilityType = "clinic"
	FacilityTypePharmacy FacilityType = "pharmacy"
)

// TypeFilterAll is the sentinel value meaning "no type filter"
const TypeFilterAll = "all"

// ParseFacilityType validates a type filter value. The "all" sentinel is
// accepted and returned as-is.
func ParseFacilityType(value string) (string, error) {
	switch value {
	case TypeFilterAll, "":
		return TypeFilterAll, nil
	case string(FacilityTypeHospital), string(FacilityTypeClinic), string(FacilityTypePharmacy):
		return value, nil
	default:
		return "", apperrors.NewValidationError("invalid facility type: " + value)
	}
}

// Coordinate represents geographical coordinates in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinate is finite and within range
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return apperrors.NewValidationError("coordinate must be finite")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return apperrors.NewValidationError("latitude must be in [-90, 90]")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return apperrors.NewValidationError("longitude must be in [-180, 180]")
	}
	return nil
}

// Facility is the canonical facility model produced by providers and
// enriched at merge time. It is constructed fresh on every discovery
// request; optional fields are nil when the provider did not report them,
// which is distinct from false/zero.
type Facility struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Address         string           `json:"address"`
	Location        Coordinate       `json:"location"`
	Types           []FacilityType   `json:"types"`
	DistanceMeters  *float64         `json:"distance_m,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	MapURL          string           `json:"map_url,omitempty"`
	OpenNow         *bool            `json:"open_now,omitempty"`
	Rating          *float64         `json:"rating,omitempty"`
	RatingCount     *int             `json:"user_ratings_total,omitempty"`
	Specialties     []string         `json:"specialties,omitempty"`
	BedsAvailable   *int             `json:"beds_available,omitempty"`
	BloodAvailable  *bool            `json:"blood_available,omitempty"`
	OxygenAvailable *bool            `json:"oxygen_available,omitempty"`
	Report          *CommunityReport `json:"user_reports,omitempty"`
}

// HasType reports whether the facility carries the given type tag
func (f *Facility) HasType(t FacilityType) bool {
	for _, ft := range f.Types {
		if ft == t {
			return true
		}
	}
	return false
}

// Validate checks the canonical-model invariants
func (f *Facility) Validate() error {
	if f.ID == "" {
		return apperrors.NewValidationError("facility id is required")
	}
	if f.Name == "" || f.Address == "" {
		return apperrors.NewValidationError("facility name and address are required")
	}
	if len(f.Types) == 0 {
		return apperrors.NewValidationError("facility must have at least one type")
	}
	if err := f.Location.Validate(); err != nil {
		return err
	}
	if f.Rating != nil && (*f.Rating < 0 || *f.Rating > 5) {
		return apperrors.NewValidationError("rating must be in [0, 5]")
	}
	if f.BedsAvailable != nil && *f.BedsAvailable < 0 {
		return apperrors.NewValidationError("beds available must be non-negative")
	}
	if f.DistanceMeters != nil && *f.DistanceMeters < 0 {
		return apperrors.NewValidationError("distance must be non-negative")
	}
	return nil
}
