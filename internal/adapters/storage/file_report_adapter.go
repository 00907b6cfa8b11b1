package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/repositories"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

const reportsFileName = "reports.json"

// FileReportAdapter implements community report persistence in a single
// JSON file under dir. It is the default backend for single-device
// installs: reports survive process restarts but are never synchronized
// across devices. Writes go through a temp file and rename so a crash
// mid-write cannot corrupt the store.
type FileReportAdapter struct {
	dir string

	mu      sync.RWMutex
	reports map[string]*entities.CommunityReport
}

// NewFileReportAdapter opens (or creates) the file-backed report store.
func NewFileReportAdapter(dir string) (*FileReportAdapter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.NewUnavailableError("failed to create reports dir", err)
	}

	a := &FileReportAdapter{
		dir:     dir,
		reports: make(map[string]*entities.CommunityReport),
	}

	data, err := os.ReadFile(a.path())
	if err != nil {
		if os.IsNotExist(err) {
			return a, nil
		}
		return nil, apperrors.NewUnavailableError("failed to read reports file", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &a.reports); err != nil {
			return nil, apperrors.NewInternalError("reports file is corrupt", err)
		}
	}

	return a, nil
}

var _ repositories.ReportRepository = (*FileReportAdapter)(nil)

// Get returns the stored report for a facility, or nil when none exists.
func (a *FileReportAdapter) Get(ctx context.Context, facilityID string) (*entities.CommunityReport, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	report, ok := a.reports[facilityID]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

// Put stores the report for a facility and flushes the file.
func (a *FileReportAdapter) Put(ctx context.Context, facilityID string, report *entities.CommunityReport) error {
	if report == nil {
		return apperrors.NewInternalError("report is nil", nil)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	copied := *report
	a.reports[facilityID] = &copied

	return a.flushLocked()
}

// Snapshot returns a copy of all stored reports keyed by facility id.
func (a *FileReportAdapter) Snapshot(ctx context.Context) (map[string]*entities.CommunityReport, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snapshot := make(map[string]*entities.CommunityReport, len(a.reports))
	for id, report := range a.reports {
		copied := *report
		snapshot[id] = &copied
	}
	return snapshot, nil
}

func (a *FileReportAdapter) flushLocked() error {
	data, err := json.MarshalIndent(a.reports, "", "  ")
	if err != nil {
		return apperrors.NewInternalError("failed to marshal reports", err)
	}

	tmp, err := os.CreateTemp(a.dir, reportsFileName+".tmp-*")
	if err != nil {
		return apperrors.NewUnavailableError("failed to create temp reports file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewUnavailableError("failed to write reports file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.NewUnavailableError("failed to close reports file", err)
	}

	if err := os.Rename(tmpName, a.path()); err != nil {
		os.Remove(tmpName)
		return apperrors.NewUnavailableError("failed to replace reports file", err)
	}
	return nil
}

func (a *FileReportAdapter) path() string {
	return filepath.Join(a.dir, reportsFileName)
}
