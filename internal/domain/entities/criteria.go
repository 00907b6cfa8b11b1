package entities

import (
	"strings"

	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

// SortKey selects the ordering applied to a result set
type SortKey string

const (
	SortByDistance     SortKey = "distance"
	SortByRating       SortKey = "rating"
	SortByAvailability SortKey = "availability"
	SortByAlphabetical SortKey = "alphabetical"
	SortByUserReports  SortKey = "user_reports"
)

// ParseSortKey validates a sort key. An unknown key is a caller error,
// never silently defaulted.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortByDistance, nil
	}
	switch SortKey(value) {
	case SortByDistance, SortByRating, SortByAvailability, SortByAlphabetical, SortByUserReports:
		return SortKey(value), nil
	default:
		return "", apperrors.NewValidationError("invalid sort key: " + value)
	}
}

// SpecialtyFilterAll is the sentinel value meaning "no specialty filter"
const SpecialtyFilterAll = "all"

// NormalizeSpecialty converts a specialty label to its filter form:
// lowercase with spaces collapsed to hyphens.
func NormalizeSpecialty(value string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	return strings.Join(fields, "-")
}

// SearchCriteria is the ephemeral per-search value object. Location carries
// the resolved query coordinate; Query the free-text location, used when
// Location is unset. Not persisted.
type SearchCriteria struct {
	Location     *Coordinate
	Query        string
	RadiusMeters int
	Type         string
	Specialty    string
	SortBy       SortKey

	OpenNowOnly bool
	BedsOnly    bool
	BloodOnly   bool
	OxygenOnly  bool
}

// Validate checks the criteria invariants. Type, Specialty and SortBy are
// expected to have been parsed via their Parse helpers.
func (c *SearchCriteria) Validate() error {
	if c.RadiusMeters <= 0 {
		return apperrors.NewValidationError("radius must be positive")
	}
	if c.Location != nil {
		if err := c.Location.Validate(); err != nil {
			return err
		}
	}
	if _, err := ParseSortKey(string(c.SortBy)); err != nil {
		return err
	}
	if _, err := ParseFacilityType(c.Type); err != nil {
		return err
	}
	return nil
}

// FiltersOff reports whether every optional predicate is at its "all/off"
// sentinel, in which case filtering is the identity.
func (c *SearchCriteria) FiltersOff() bool {
	return (c.Type == TypeFilterAll || c.Type == "") &&
		(c.Specialty == SpecialtyFilterAll || c.Specialty == "") &&
		!c.OpenNowOnly && !c.BedsOnly && !c.BloodOnly && !c.OxygenOnly
}
