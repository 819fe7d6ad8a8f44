package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"keyforest/internal/models"
	"keyforest/internal/utils"
)

// ShortcutDocument is the raw shortcuts.json content: profile id -> shortcut set.
type ShortcutDocument map[string]json.RawMessage

// ShortcutRepository persists every profile's shortcut set in one document (shortcuts.json).
type ShortcutRepository interface {
	// Get returns the stored set for profileID. found is false when nothing is stored.
	Get(ctx context.Context, profileID string) (set models.ShortcutSet, found bool, err error)
	Put(ctx context.Context, profileID string, set models.ShortcutSet) error
	Delete(ctx context.Context, profileID string) error
	All(ctx context.Context) (doc ShortcutDocument, found bool, err error)
	ReplaceAll(ctx context.Context, doc ShortcutDocument) error
}

type shortcutRepository struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

func NewShortcutRepository(path string, log *zap.Logger) ShortcutRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &shortcutRepository{path: path, log: log}
}

func (r *shortcutRepository) read() (ShortcutDocument, bool, error) {
	var doc ShortcutDocument
	found, err := utils.ReadJSON(r.path, &doc)
	if err != nil {
		return nil, found, fmt.Errorf("reading shortcuts %s: %w", r.path, err)
	}
	if doc == nil {
		doc = ShortcutDocument{}
	}
	return doc, found, nil
}

func (r *shortcutRepository) write(doc ShortcutDocument) error {
	if err := utils.WriteJSON(r.path, doc); err != nil {
		return fmt.Errorf("writing shortcuts %s: %w", r.path, err)
	}
	return nil
}

func (r *shortcutRepository) Get(ctx context.Context, profileID string) (models.ShortcutSet, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, _, err := r.read()
	if err != nil {
		return nil, false, err
	}
	raw, ok := doc[profileID]
	if !ok || string(raw) == "null" {
		return nil, false, nil
	}

	var set models.ShortcutSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, true, fmt.Errorf("decoding shortcuts for %q: %w", profileID, err)
	}
	if set == nil {
		set = models.ShortcutSet{}
	}
	return set, true, nil
}

func (r *shortcutRepository) Put(ctx context.Context, profileID string, set models.ShortcutSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, _, err := r.read()
	if err != nil {
		// An unreadable document is replaced rather than blocking every save.
		r.log.Warn("shortcuts file unreadable, starting from empty document",
			zap.String("path", r.path), zap.Error(err))
		doc = ShortcutDocument{}
	}

	if set == nil {
		set = models.ShortcutSet{}
	}
	set.Normalize()
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encoding shortcuts for %q: %w", profileID, err)
	}
	doc[profileID] = raw
	return r.write(doc)
}

func (r *shortcutRepository) Delete(ctx context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, found, err := r.read()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if _, ok := doc[profileID]; !ok {
		return nil
	}
	delete(doc, profileID)
	return r.write(doc)
}

func (r *shortcutRepository) All(ctx context.Context) (ShortcutDocument, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *shortcutRepository) ReplaceAll(ctx context.Context, doc ShortcutDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc == nil {
		doc = ShortcutDocument{}
	}
	return r.write(doc)
}
