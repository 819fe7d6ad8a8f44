package mocks

import (
	"context"

	"keyforest/internal/models"
)

type ShortcutCacheRepositoryMock struct {
	GetFunc    func(ctx context.Context, profileID string) (*models.CachedShortcutSet, error)
	PutFunc    func(ctx context.Context, entry *models.CachedShortcutSet) error
	DeleteFunc func(ctx context.Context, profileID string) error
}

func (m *ShortcutCacheRepositoryMock) Get(ctx context.Context, profileID string) (*models.CachedShortcutSet, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, profileID)
	}
	return nil, nil
}

func (m *ShortcutCacheRepositoryMock) Put(ctx context.Context, entry *models.CachedShortcutSet) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, entry)
	}
	return nil
}

func (m *ShortcutCacheRepositoryMock) Delete(ctx context.Context, profileID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, profileID)
	}
	return nil
}
