package unit_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyforest/internal/models"
	"keyforest/internal/services"
	"keyforest/internal/tests/mocks"
)

func TestCacheService_StoreThenLoad(t *testing.T) {
	var entry *models.CachedShortcutSet
	repo := &mocks.ShortcutCacheRepositoryMock{
		PutFunc: func(ctx context.Context, e *models.CachedShortcutSet) error {
			entry = e
			return nil
		},
		GetFunc: func(ctx context.Context, profileID string) (*models.CachedShortcutSet, error) {
			return entry, nil
		},
	}
	service := services.NewCacheService(repo, nil)

	set := models.NewShortcutSet()
	set.Set(models.ModifierAlt, "F4", "Close window")
	require.NoError(t, service.Store(context.Background(), "default", set))
	require.NotNil(t, entry)
	assert.Equal(t, "default", entry.ProfileID)
	assert.False(t, entry.UpdatedAt.IsZero())

	loaded, ok := service.Load(context.Background(), "default")
	require.True(t, ok)
	assert.Equal(t, "Close window", loaded.Get(models.ModifierAlt, "F4"))
	assert.Len(t, loaded, 6)
}

func TestCacheService_Load_MissAndFailures(t *testing.T) {
	service := services.NewCacheService(&mocks.ShortcutCacheRepositoryMock{}, nil)
	_, ok := service.Load(context.Background(), "default")
	assert.False(t, ok)

	failing := services.NewCacheService(&mocks.ShortcutCacheRepositoryMock{
		GetFunc: func(ctx context.Context, profileID string) (*models.CachedShortcutSet, error) {
			return nil, errors.New("disk I/O error")
		},
	}, nil)
	_, ok = failing.Load(context.Background(), "default")
	assert.False(t, ok)

	corrupt := services.NewCacheService(&mocks.ShortcutCacheRepositoryMock{
		GetFunc: func(ctx context.Context, profileID string) (*models.CachedShortcutSet, error) {
			return &models.CachedShortcutSet{ProfileID: profileID, Payload: "{not json"}, nil
		},
	}, nil)
	_, ok = corrupt.Load(context.Background(), "default")
	assert.False(t, ok)
}
