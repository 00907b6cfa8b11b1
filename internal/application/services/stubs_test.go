package services

import (
	"context"
	"sync"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/providers"
)

type stubGeocoder struct {
	coord *entities.Coordinate
	err   error
	calls int
}

func (g *stubGeocoder) Geocode(ctx context.Context, address string) (*entities.Coordinate, error) {
	g.calls++
	return g.coord, g.err
}

func (g *stubGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	return "", nil
}

type stubDevice struct {
	coord *entities.Coordinate
	err   error
}

func (d *stubDevice) CurrentLocation(ctx context.Context) (*entities.Coordinate, error) {
	return d.coord, d.err
}

type stubReportRepo struct {
	mu      sync.Mutex
	reports map[string]*entities.CommunityReport
	putErr  error
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: make(map[string]*entities.CommunityReport)}
}

func (r *stubReportRepo) Get(ctx context.Context, facilityID string) (*entities.CommunityReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[facilityID]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (r *stubReportRepo) Put(ctx context.Context, facilityID string, report *entities.CommunityReport) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *report
	r.reports[facilityID] = &copied
	return nil
}

func (r *stubReportRepo) Snapshot(ctx context.Context) (map[string]*entities.CommunityReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make(map[string]*entities.CommunityReport, len(r.reports))
	for id, report := range r.reports {
		copied := *report
		snapshot[id] = &copied
	}
	return snapshot, nil
}

type stubFacilityProvider struct {
	source providers.DataSource
	fn     func(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error)
}

func (p *stubFacilityProvider) Nearby(ctx context.Context, query providers.FacilityQuery) ([]*entities.Facility, error) {
	return p.fn(ctx, query)
}

func (p *stubFacilityProvider) Source() providers.DataSource {
	return p.source
}

func namedFacility(id, name string, lat, lon float64) *entities.Facility {
	return &entities.Facility{
		ID:       id,
		Name:     name,
		Address:  name + " Road",
		Location: entities.Coordinate{Latitude: lat, Longitude: lon},
		Types:    []entities.FacilityType{entities.FacilityTypeHospital},
	}
}

func float64Ptr(v float64) *float64 { return &v }
func intValPtr(v int) *int          { return &v }
func boolValPtr(v bool) *bool       { return &v }
