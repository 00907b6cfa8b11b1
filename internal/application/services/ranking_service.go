package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

// RankingService is the pure filter/sort pipeline applied after merge.
// Filtering AND-combines the active predicates; sorting is stable so
// equal-key facilities keep their provider order. Optional fields that a
// provider did not report are "unknown": excluded from positive
// availability filters and ordered after known values.
type RankingService struct {
	collator *collate.Collator
}

// NewRankingService creates a new ranking service.
func NewRankingService() *RankingService {
	return &RankingService{
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Apply filters then sorts the facilities per the criteria and returns a
// new slice. The input slice and its facilities are not modified.
func (s *RankingService) Apply(facilities []*entities.Facility, criteria *entities.SearchCriteria) ([]*entities.Facility, error) {
	filtered := s.filter(facilities, criteria)
	if err := s.sortBy(filtered, criteria.SortBy); err != nil {
		return nil, err
	}
	return filtered, nil
}

func (s *RankingService) filter(facilities []*entities.Facility, criteria *entities.SearchCriteria) []*entities.Facility {
	if criteria.FiltersOff() {
		out := make([]*entities.Facility, len(facilities))
		copy(out, facilities)
		return out
	}

	out := make([]*entities.Facility, 0, len(facilities))
	for _, f := range facilities {
		if !s.matches(f, criteria) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (s *RankingService) matches(f *entities.Facility, criteria *entities.SearchCriteria) bool {
	if criteria.Type != "" && criteria.Type != entities.TypeFilterAll &&
		!f.HasType(entities.FacilityType(criteria.Type)) {
		return false
	}

	if criteria.Specialty != "" && criteria.Specialty != entities.SpecialtyFilterAll {
		want := entities.NormalizeSpecialty(criteria.Specialty)
		found := false
		for _, sp := range f.Specialties {
			if entities.NormalizeSpecialty(sp) == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if criteria.OpenNowOnly && (f.OpenNow == nil || !*f.OpenNow) {
		return false
	}
	if criteria.BedsOnly && (f.BedsAvailable == nil || *f.BedsAvailable <= 0) {
		return false
	}
	if criteria.BloodOnly && (f.BloodAvailable == nil || !*f.BloodAvailable) {
		return false
	}
	if criteria.OxygenOnly && (f.OxygenAvailable == nil || !*f.OxygenAvailable) {
		return false
	}

	return true
}

func (s *RankingService) sortBy(facilities []*entities.Facility, key entities.SortKey) error {
	switch key {
	case entities.SortByDistance, "":
		sort.SliceStable(facilities, func(i, j int) bool {
			a, b := facilities[i].DistanceMeters, facilities[j].DistanceMeters
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return *a < *b
		})
	case entities.SortByRating:
		sort.SliceStable(facilities, func(i, j int) bool {
			a, b := facilities[i].Rating, facilities[j].Rating
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return *a > *b
		})
	case entities.SortByAvailability:
		sort.SliceStable(facilities, func(i, j int) bool {
			aScore, aKnown := availabilityScore(facilities[i])
			bScore, bKnown := availabilityScore(facilities[j])
			if aKnown != bKnown {
				return aKnown
			}
			return aScore > bScore
		})
	case entities.SortByAlphabetical:
		sort.SliceStable(facilities, func(i, j int) bool {
			return s.collator.CompareString(facilities[i].Name, facilities[j].Name) < 0
		})
	case entities.SortByUserReports:
		sort.SliceStable(facilities, func(i, j int) bool {
			return reportTotal(facilities[i]) > reportTotal(facilities[j])
		})
	default:
		return apperrors.NewValidationError("invalid sort key: " + string(key))
	}
	return nil
}

// availabilityScore weights beds highest, then blood, then oxygen. A
// facility with no known availability fields at all is unknown and orders
// after every facility with at least one known field.
func availabilityScore(f *entities.Facility) (score int, known bool) {
	if f.BedsAvailable != nil {
		known = true
		if *f.BedsAvailable > 0 {
			score += 3
		}
	}
	if f.BloodAvailable != nil {
		known = true
		if *f.BloodAvailable {
			score += 2
		}
	}
	if f.OxygenAvailable != nil {
		known = true
		if *f.OxygenAvailable {
			score += 1
		}
	}
	return score, known
}

func reportTotal(f *entities.Facility) int {
	if f.Report == nil {
		return 0
	}
	return f.Report.Total()
}
