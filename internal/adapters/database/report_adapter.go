package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/kezv166-web/medicare/internal/domain/entities"
	"github.com/kezv166-web/medicare/internal/domain/repositories"
	"github.com/kezv166-web/medicare/internal/infrastructure/clients/postgres"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

const reportsTable = "community_reports"

// ReportAdapter implements community report persistence in Postgres.
// Intended for deployments where the engine runs as a shared service;
// single-device installs use the file adapter instead.
type ReportAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReportAdapter creates a new report adapter.
func NewReportAdapter(client *postgres.Client) *ReportAdapter {
	return &ReportAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var _ repositories.ReportRepository = (*ReportAdapter)(nil)

// EnsureSchema creates the reports table when it does not exist yet.
func (a *ReportAdapter) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS community_reports (
			facility_id      TEXT PRIMARY KEY,
			in_stock         INTEGER NOT NULL DEFAULT 0,
			out_of_stock     INTEGER NOT NULL DEFAULT 0,
			open_count       INTEGER NOT NULL DEFAULT 0,
			closed_count     INTEGER NOT NULL DEFAULT 0,
			last_reported_at TIMESTAMPTZ,
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := a.client.DB().ExecContext(ctx, ddl); err != nil {
		return apperrors.NewUnavailableError("failed to ensure reports schema", err)
	}
	return nil
}

// Get returns the stored report for a facility, or nil when none exists.
func (a *ReportAdapter) Get(ctx context.Context, facilityID string) (*entities.CommunityReport, error) {
	query, args, err := a.db.From(reportsTable).
		Select("in_stock", "out_of_stock", "open_count", "closed_count", "last_reported_at").
		Where(goqu.C("facility_id").Eq(facilityID)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build report select query", err)
	}

	var (
		report entities.CommunityReport
		last   sql.NullTime
	)
	row := a.client.DB().QueryRowContext(ctx, query, args...)
	if err := row.Scan(&report.InStock, &report.OutOfStock, &report.Open, &report.Closed, &last); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.NewUnavailableError("failed to read report", err)
	}
	if last.Valid {
		t := last.Time
		report.LastReportedAt = &t
	}

	return &report, nil
}

// Put stores the report for a facility, replacing any previous value.
func (a *ReportAdapter) Put(ctx context.Context, facilityID string, report *entities.CommunityReport) error {
	if report == nil {
		return apperrors.NewInternalError("report is nil", nil)
	}

	var last interface{}
	if report.LastReportedAt != nil {
		last = *report.LastReportedAt
	}

	record := goqu.Record{
		"facility_id":      facilityID,
		"in_stock":         report.InStock,
		"out_of_stock":     report.OutOfStock,
		"open_count":       report.Open,
		"closed_count":     report.Closed,
		"last_reported_at": last,
		"updated_at":       time.Now().UTC(),
	}

	query, args, err := a.db.Insert(reportsTable).
		Rows(record).
		OnConflict(goqu.DoUpdate("facility_id", record)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build report upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewUnavailableError("failed to persist report", err)
	}

	return nil
}

// Snapshot returns all stored reports keyed by facility id.
func (a *ReportAdapter) Snapshot(ctx context.Context) (map[string]*entities.CommunityReport, error) {
	query, args, err := a.db.From(reportsTable).
		Select("facility_id", "in_stock", "out_of_stock", "open_count", "closed_count", "last_reported_at").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build report snapshot query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to read report snapshot", err)
	}
	defer rows.Close()

	snapshot := make(map[string]*entities.CommunityReport)
	for rows.Next() {
		var (
			facilityID string
			report     entities.CommunityReport
			last       sql.NullTime
		)
		if err := rows.Scan(&facilityID, &report.InStock, &report.OutOfStock, &report.Open, &report.Closed, &last); err != nil {
			return nil, apperrors.NewInternalError("failed to scan report row", err)
		}
		if last.Valid {
			t := last.Time
			report.LastReportedAt = &t
		}
		snapshot[facilityID] = &report
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewUnavailableError("failed to iterate report rows", err)
	}

	return snapshot, nil
}
