package mocks

import (
	"context"

	"keyforest/internal/models"
	"keyforest/internal/repositories"
)

type ShortcutRepositoryMock struct {
	GetFunc        func(ctx context.Context, profileID string) (models.ShortcutSet, bool, error)
	PutFunc        func(ctx context.Context, profileID string, set models.ShortcutSet) error
	DeleteFunc     func(ctx context.Context, profileID string) error
	AllFunc        func(ctx context.Context) (repositories.ShortcutDocument, bool, error)
	ReplaceAllFunc func(ctx context.Context, doc repositories.ShortcutDocument) error
}

func (m *ShortcutRepositoryMock) Get(ctx context.Context, profileID string) (models.ShortcutSet, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, profileID)
	}
	return nil, false, nil
}

func (m *ShortcutRepositoryMock) Put(ctx context.Context, profileID string, set models.ShortcutSet) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, profileID, set)
	}
	return nil
}

func (m *ShortcutRepositoryMock) Delete(ctx context.Context, profileID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, profileID)
	}
	return nil
}

func (m *ShortcutRepositoryMock) All(ctx context.Context) (repositories.ShortcutDocument, bool, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return repositories.ShortcutDocument{}, false, nil
}

func (m *ShortcutRepositoryMock) ReplaceAll(ctx context.Context, doc repositories.ShortcutDocument) error {
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, doc)
	}
	return nil
}
