package mocks

import (
	"context"

	"keyforest/internal/models"
)

type ProfileRepositoryMock struct {
	ListFunc       func(ctx context.Context) ([]models.Profile, bool, error)
	SaveAllFunc    func(ctx context.Context, profiles []models.Profile) error
	SaveFunc       func(ctx context.Context, p models.Profile) error
	DeleteFunc     func(ctx context.Context, id string) error
	ExistsFunc     func(ctx context.Context, id string) (bool, error)
	RawListFunc    func(ctx context.Context) ([]map[string]any, bool, error)
	ReplaceRawFunc func(ctx context.Context, docs []map[string]any) error
}

func (m *ProfileRepositoryMock) List(ctx context.Context) ([]models.Profile, bool, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Profile{models.DefaultProfile()}, true, nil
}

func (m *ProfileRepositoryMock) SaveAll(ctx context.Context, profiles []models.Profile) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, profiles)
	}
	return nil
}

func (m *ProfileRepositoryMock) Save(ctx context.Context, p models.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *ProfileRepositoryMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *ProfileRepositoryMock) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *ProfileRepositoryMock) RawList(ctx context.Context) ([]map[string]any, bool, error) {
	if m.RawListFunc != nil {
		return m.RawListFunc(ctx)
	}
	return nil, false, nil
}

func (m *ProfileRepositoryMock) ReplaceRaw(ctx context.Context, docs []map[string]any) error {
	if m.ReplaceRawFunc != nil {
		return m.ReplaceRawFunc(ctx, docs)
	}
	return nil
}
