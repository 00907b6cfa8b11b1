package services

import (
	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/pkg/geo"
)

// MergeService combines raw provider results with the community report
// snapshot. It is a pure transformation: inputs are never mutated and the
// snapshot is read-only.
type MergeService struct{}

// NewMergeService creates a new merge service.
func NewMergeService() *MergeService {
	return &MergeService{}
}

// Merge returns enriched copies of the facilities: each carries its
// haversine distance from center and a community report. Facilities with
// no stored report get a zero-valued report so every result is uniformly
// shaped for ranking and presentation.
func (s *MergeService) Merge(
	center entities.Coordinate,
	facilities []*entities.Facility,
	snapshot map[string]*entities.CommunityReport,
) []*entities.Facility {
	merged := make([]*entities.Facility, 0, len(facilities))

	for _, f := range facilities {
		copied := *f

		dist := geo.HaversineMeters(
			center.Latitude, center.Longitude,
			f.Location.Latitude, f.Location.Longitude,
		)
		copied.DistanceMeters = &dist

		if stored, ok := snapshot[f.ID]; ok && stored != nil {
			report := *stored
			copied.Report = &report
		} else {
			copied.Report = &entities.CommunityReport{}
		}

		merged = append(merged, &copied)
	}

	return merged
}
