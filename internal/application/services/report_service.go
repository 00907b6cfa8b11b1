package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/repositories"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

// ReportService records community status reports and serves report
// snapshots for merging. Writes to the same facility are serialized with a
// per-facility lock so concurrent reports never lose an increment; writes
// to different facilities proceed in parallel.
type ReportService struct {
	repo repositories.ReportRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewReportService creates a new report service.
func NewReportService(repo repositories.ReportRepository) *ReportService {
	return &ReportService{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

// Record applies one status report to a facility's counters and persists
// the result. The updated report is returned. Storage failures surface as
// recoverable errors; counters are never partially applied.
func (s *ReportService) Record(ctx context.Context, facilityID string, kind entities.ReportKind) (*entities.CommunityReport, error) {
	if facilityID == "" {
		return nil, apperrors.NewValidationError("facility id is required")
	}
	if _, err := entities.ParseReportKind(string(kind)); err != nil {
		return nil, err
	}

	lock := s.lockFor(facilityID)
	lock.Lock()
	defer lock.Unlock()

	report, err := s.repo.Get(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		report = &entities.CommunityReport{}
	}

	report.Apply(kind, time.Now().UTC())

	if err := s.repo.Put(ctx, facilityID, report); err != nil {
		log.Error().Err(err).Str("facility_id", facilityID).Msg("failed to persist community report")
		return nil, err
	}

	return report, nil
}

// Snapshot returns all stored reports keyed by facility id.
func (s *ReportService) Snapshot(ctx context.Context) (map[string]*entities.CommunityReport, error) {
	return s.repo.Snapshot(ctx)
}

func (s *ReportService) lockFor(facilityID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[facilityID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[facilityID] = lock
	}
	return lock
}
