package unit_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyforest/internal/models"
	"keyforest/internal/services"
	"keyforest/internal/tests/mocks"
)

func TestShortcutService_Load_MissingProfileGetsEmptySet(t *testing.T) {
	service := services.NewShortcutService(&mocks.ShortcutRepositoryMock{})

	set, err := service.Load(context.Background(), "app_new")
	require.NoError(t, err)
	assert.Len(t, set, 6)
	assert.Equal(t, 0, set.Count())
}

func TestShortcutService_Load_FillsMissingCategories(t *testing.T) {
	repo := &mocks.ShortcutRepositoryMock{
		GetFunc: func(ctx context.Context, profileID string) (models.ShortcutSet, bool, error) {
			return models.ShortcutSet{models.ModifierCtrl: {"s": "Save"}}, true, nil
		},
	}
	service := services.NewShortcutService(repo)

	set, err := service.Load(context.Background(), "default")
	require.NoError(t, err)
	for _, m := range models.Modifiers() {
		assert.NotNil(t, set[m], m)
	}
	assert.Equal(t, "Save", set.Get(models.ModifierCtrl, "s"))
}

func TestShortcutService_Save_Validates(t *testing.T) {
	service := services.NewShortcutService(&mocks.ShortcutRepositoryMock{})

	assert.ErrorIs(t, service.Save(context.Background(), "", models.NewShortcutSet()), services.ErrInvalidProfile)
	assert.ErrorIs(t, service.Save(context.Background(), "default", nil), services.ErrInvalidShortcuts)
}

func TestShortcutService_Save_Normalizes(t *testing.T) {
	var stored models.ShortcutSet
	repo := &mocks.ShortcutRepositoryMock{
		PutFunc: func(ctx context.Context, profileID string, set models.ShortcutSet) error {
			stored = set
			return nil
		},
	}
	service := services.NewShortcutService(repo)

	require.NoError(t, service.Save(context.Background(), "default", models.ShortcutSet{models.ModifierAlt: {"f": "File"}}))
	assert.Len(t, stored, 6)
}

func TestShortcutService_SetAndClearAction(t *testing.T) {
	stored := map[string]models.ShortcutSet{}
	repo := &mocks.ShortcutRepositoryMock{
		GetFunc: func(ctx context.Context, profileID string) (models.ShortcutSet, bool, error) {
			set, ok := stored[profileID]
			if !ok {
				return nil, false, nil
			}
			return set.Clone(), true, nil
		},
		PutFunc: func(ctx context.Context, profileID string, set models.ShortcutSet) error {
			stored[profileID] = set.Clone()
			return nil
		},
	}
	service := services.NewShortcutService(repo)
	ctx := context.Background()

	set, err := service.SetAction(ctx, "default", models.ModifierCtrlAlt, "Delete", "  Task manager  ")
	require.NoError(t, err)
	assert.Equal(t, "Task manager", set.Get(models.ModifierCtrlAlt, "Delete"))
	assert.Equal(t, "Task manager", stored["default"].Get(models.ModifierCtrlAlt, "Delete"))

	set, err = service.SetAction(ctx, "default", models.ModifierCtrlAlt, "Delete", "   ")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Count())

	_, err = service.SetAction(ctx, "default", models.ModifierCtrlAlt, "Delete", "Again")
	require.NoError(t, err)
	set, err = service.ClearAction(ctx, "default", models.ModifierCtrlAlt, "Delete")
	require.NoError(t, err)
	assert.Equal(t, 0, stored["default"].Count())
	assert.Equal(t, 0, set.Count())

	_, err = service.SetAction(ctx, "default", models.Modifier("meta"), "a", "x")
	assert.ErrorIs(t, err, services.ErrInvalidShortcuts)
}
