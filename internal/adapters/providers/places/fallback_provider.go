package places

import (
	"context"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/providers"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
	"github.com/kezv166-web/medicare/pkg/geo"
)

// StaticFallbackProvider serves the bundled city datasets when the live
// provider cannot be reached. It selects the city whose reference
// coordinate is nearest to the query center under planar Euclidean degree
// distance — a documented low-precision heuristic that is sufficient at
// city-selection granularity.
type StaticFallbackProvider struct {
	datasets    map[string]cityDataset
	defaultCity string
}

// NewStaticFallbackProvider creates a fallback provider over the bundled
// datasets.
func NewStaticFallbackProvider() *StaticFallbackProvider {
	return &StaticFallbackProvider{
		datasets:    bundledDatasets,
		defaultCity: defaultCityKey,
	}
}

// Source identifies this provider as the fallback data source
func (p *StaticFallbackProvider) Source() providers.DataSource {
	return providers.DataSourceFallback
}

// Nearby returns the nearest bundled city's facilities, optionally filtered
// by type. It only fails when the bundled table is empty, which is a fatal
// configuration error outside normal operation.
func (p *StaticFallbackProvider) Nearby(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
	if len(p.datasets) == 0 {
		return nil, apperrors.NewInternalError("no bundled facility datasets available", nil)
	}

	dataset := p.nearestCity(query.Center)

	facilities := make([]*entities.Facility, 0, len(dataset.facilities))
	for _, f := range dataset.facilities {
		if query.TypeFilter != "" && query.TypeFilter != entities.TypeFilterAll &&
			!f.HasType(entities.FacilityType(query.TypeFilter)) {
			continue
		}
		copied := *f
		facilities = append(facilities, &copied)
	}

	return facilities, nil
}

// CityFor returns the key of the dataset that would serve the coordinate.
func (p *StaticFallbackProvider) CityFor(center entities.Coordinate) string {
	return p.nearestCity(center).key
}

func (p *StaticFallbackProvider) nearestCity(center entities.Coordinate) cityDataset {
	best, ok := p.datasets[p.defaultCity]
	bestDist := -1.0

	for _, dataset := range p.datasets {
		dist := geo.PlanarDegrees(center.Latitude, center.Longitude,
			dataset.reference.Latitude, dataset.reference.Longitude)
		if !ok || bestDist < 0 || dist < bestDist {
			best = dataset
			bestDist = dist
			ok = true
		}
	}

	return best
}
