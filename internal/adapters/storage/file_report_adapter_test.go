package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kezv166-web/medicare/internal/domain/entities"
)

func TestFileAdapterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a, err := NewFileReportAdapter(dir)
	require.NoError(t, err)

	got, err := a.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Nil(t, got)

	now := time.Now().UTC().Truncate(time.Second)
	report := &entities.CommunityReport{Open: 2, LastReportedAt: &now}
	require.NoError(t, a.Put(ctx, "f1", report))

	got, err = a.Get(ctx, "f1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Open)
}

func TestFileAdapterSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a, err := NewFileReportAdapter(dir)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, a.Put(ctx, "f1", &entities.CommunityReport{InStock: 3, LastReportedAt: &now}))
	require.NoError(t, a.Put(ctx, "f2", &entities.CommunityReport{Closed: 1, LastReportedAt: &now}))

	// Reopen over the same directory, as a process restart would
	reopened, err := NewFileReportAdapter(dir)
	require.NoError(t, err)

	snapshot, err := reopened.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)
	assert.Equal(t, 3, snapshot["f1"].InStock)
	assert.Equal(t, 1, snapshot["f2"].Closed)
	require.NotNil(t, snapshot["f1"].LastReportedAt)
	assert.True(t, snapshot["f1"].LastReportedAt.Equal(now))
}

func TestFileAdapterSnapshotIsCopy(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a, err := NewFileReportAdapter(dir)
	require.NoError(t, err)
	require.NoError(t, a.Put(ctx, "f1", &entities.CommunityReport{Open: 1}))

	snapshot, err := a.Snapshot(ctx)
	require.NoError(t, err)
	snapshot["f1"].Open = 99

	got, err := a.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Open, "mutating a snapshot must not affect the store")
}
