package providers

import (
	"context"

	"github.com/kezv166-web/medicare/internal/domain/entities"
)

// DataSource identifies which provider produced a result set
type DataSource string

const (
	// DataSourceLive marks results fetched from the live places API
	DataSourceLive DataSource = "live"

	// DataSourceFallback marks results served from the bundled datasets
	DataSourceFallback DataSource = "fallback"
)

// FacilityQuery is the request shape shared by all facility providers
type FacilityQuery struct {
	Center       entities.Coordinate
	RadiusMeters int

	// TypeFilter is a facility type or the "all" sentinel
	TypeFilter string
}

// FacilityProvider yields facility records near a coordinate. Exactly two
// implementations exist: the live places client and the static fallback.
// The orchestrator holds them as a prioritized list and tries in order.
type FacilityProvider interface {
	// Nearby returns canonical facilities near the query center. The
	// returned facilities have no distance or community report attached;
	// those are added at merge time.
	Nearby(ctx context.Context, query FacilityQuery) ([]*entities.Facility, error)

	// Source identifies the provider's data source tag
	Source() DataSource
}
