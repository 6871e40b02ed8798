package jsonfile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketmanager-server/internal/model"
	"github.com/dtroode/marketmanager-server/internal/storage/memory"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(memory.New())
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := repo.GetByToken(ctx, "missing")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, repo.Deactivate(ctx, "missing"), model.ErrNotFound)

	live := model.Session{Token: "live", UserID: "u", CreatedAt: now, ExpiresAt: now.Add(model.DefaultSessionTTL), IsActive: true}
	old := model.Session{Token: "old", UserID: "u", CreatedAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour), IsActive: true}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, old))
	require.ErrorIs(t, repo.Create(ctx, live), model.ErrConflict)

	require.NoError(t, repo.Deactivate(ctx, "live"))
	got, err := repo.GetByToken(ctx, "live")
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	removed, err := repo.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.GetByToken(ctx, "old")
	require.ErrorIs(t, err, model.ErrNotFound)

	removed, err = repo.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
