package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityReportApply(t *testing.T) {
	var r CommunityReport
	now := time.Now()

	r.Apply(ReportOpen, now)
	r.Apply(ReportOpen, now.Add(time.Minute))

	assert.Equal(t, 2, r.Open)
	assert.Equal(t, 0, r.Closed)
	assert.Equal(t, 0, r.InStock)
	assert.Equal(t, 0, r.OutOfStock)
	require.NotNil(t, r.LastReportedAt)
	assert.Equal(t, now.Add(time.Minute), *r.LastReportedAt)
	assert.Equal(t, 2, r.Total())
}

func TestCommunityReportTotalAcrossKinds(t *testing.T) {
	var r CommunityReport
	now := time.Now()
	for _, kind := range []ReportKind{ReportInStock, ReportOutOfStock, ReportOpen, ReportClosed} {
		r.Apply(kind, now)
	}
	assert.Equal(t, 4, r.Total())
	assert.Equal(t, 1, r.InStock)
	assert.Equal(t, 1, r.OutOfStock)
	assert.Equal(t, 1, r.Open)
	assert.Equal(t, 1, r.Closed)
}
