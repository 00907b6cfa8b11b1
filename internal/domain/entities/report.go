package entities

import (
	"time"

	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

// ReportKind is the status a community member reported for a facility
type ReportKind string

const (
	ReportInStock    ReportKind = "in_stock"
	ReportOutOfStock ReportKind = "out_of_stock"
	ReportOpen       ReportKind = "open"
	ReportClosed     ReportKind = "closed"
)

// ParseReportKind validates a report status value
func ParseReportKind(value string) (ReportKind, error) {
	switch ReportKind(value) {
	case ReportInStock, ReportOutOfStock, ReportOpen, ReportClosed:
		return ReportKind(value), nil
	default:
		return "", apperrors.NewValidationError("invalid report status: " + value)
	}
}

// CommunityReport aggregates crowd-sourced status reports for one facility.
// Counters never decrease; exactly one counter increments per report.
type CommunityReport struct {
	InStock        int        `json:"in_stock"`
	OutOfStock     int        `json:"out_of_stock"`
	Open           int        `json:"open"`
	Closed         int        `json:"closed"`
	LastReportedAt *time.Time `json:"last_reported,omitempty"`
}

// Apply increments the counter matching kind and stamps the report time
func (r *CommunityReport) Apply(kind ReportKind, at time.Time) {
	switch kind {
	case ReportInStock:
		r.InStock++
	case ReportOutOfStock:
		r.OutOfStock++
	case ReportOpen:
		r.Open++
	case ReportClosed:
		r.Closed++
	}
	r.LastReportedAt = &at
}

// Total returns the sum of all four counters
func (r CommunityReport) Total() int {
	return r.InStock + r.OutOfStock + r.Open + r.Closed
}
