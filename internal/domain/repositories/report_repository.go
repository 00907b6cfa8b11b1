package repositories

import (
	"context"

	"github.com/kezv166-web/medicare/internal/domain/entities"
)

// ReportRepository is the durable storage boundary for community reports,
// keyed by facility id. Implementations must survive process restarts;
// write serialization per facility id is handled by the report service.
type ReportRepository interface {
	// Get returns the stored report for a facility, or nil when none exists
	Get(ctx context.Context, facilityID string) (*entities.CommunityReport, error)

	// Put stores the report for a facility, replacing any previous value
	Put(ctx context.Context, facilityID string, report *entities.CommunityReport) error

	// Snapshot returns a copy of all stored reports keyed by facility id.
	// It may run concurrently with writes and must observe a consistent
	// (not necessarily latest) view.
	Snapshot(ctx context.Context) (map[string]*entities.CommunityReport, error)
}
