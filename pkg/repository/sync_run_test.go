package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/playsort/pkg/domain"
)

func TestSyncRunRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.SyncRun.LastRun(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	clock := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	repos.SyncRun.now = func() time.Time { return clock }

	first, err := repos.SyncRun.StartRun(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	require.NoError(t, err, "run id is a uuid")
	assert.Equal(t, domain.SyncRunning, first.Status)
	assert.Equal(t, clock, first.StartedAt)

	last, err := repos.SyncRun.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, last.ID)
	assert.Nil(t, last.FinishedAt)
	assert.Equal(t, domain.SyncRunning, last.Status)

	clock = clock.Add(time.Minute)
	first.Playlists, first.Failures, first.Status, first.Error = 3, 1, domain.SyncPartial, "PLbad: timeout"
	require.NoError(t, repos.SyncRun.FinishRun(ctx, &first))
	require.NotNil(t, first.FinishedAt)
	assert.Equal(t, clock, *first.FinishedAt)

	last, err = repos.SyncRun.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, last)

	clock = clock.Add(time.Hour)
	second, err := repos.SyncRun.StartRun(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	last, err = repos.SyncRun.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
}

func TestSyncRunRepository_FinishErrors(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	err := repos.SyncRun.FinishRun(ctx, &domain.SyncRun{})
	require.Error(t, err)

	err = repos.SyncRun.FinishRun(ctx, &domain.SyncRun{ID: "unknown", Status: domain.SyncOK})
	require.ErrorIs(t, err, ErrNotFound)
}
