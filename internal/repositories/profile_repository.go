package repositories

import (
	"context"
	"fmt"
	"sync"

	"keyforest/internal/models"
	"keyforest/internal/utils"
)

// ProfileRepository persists the ordered profile list (apps.json).
type ProfileRepository interface {
	// List returns the stored profiles. found is false when the file does not exist.
	List(ctx context.Context) (profiles []models.Profile, found bool, err error)
	SaveAll(ctx context.Context, profiles []models.Profile) error
	Save(ctx context.Context, p models.Profile) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// RawList returns the stored documents untyped so legacy fields survive a read.
	RawList(ctx context.Context) (docs []map[string]any, found bool, err error)
	ReplaceRaw(ctx context.Context, docs []map[string]any) error
}

type profileRepository struct {
	path string
	mu   sync.Mutex
}

func NewProfileRepository(path string) ProfileRepository {
	return &profileRepository{path: path}
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *profileRepository) read() ([]models.Profile, bool, error) {
	var profiles []models.Profile
	found, err := utils.ReadJSON(r.path, &profiles)
	if err != nil {
		return nil, found, fmt.Errorf("reading profiles %s: %w", r.path, err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	return profiles, found, nil
}

func (r *profileRepository) SaveAll(ctx context.Context, profiles []models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(profiles)
}

func (r *profileRepository) write(profiles []models.Profile) error {
	if profiles == nil {
		profiles = []models.Profile{}
	}
	if err := utils.WriteJSON(r.path, profiles); err != nil {
		return fmt.Errorf("writing profiles %s: %w", r.path, err)
	}
	return nil
}

func (r *profileRepository) Save(ctx context.Context, p models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, _, err := r.read()
	if err != nil {
		return err
	}

	replaced := false
	for i := range profiles {
		if profiles[i].ID == p.ID {
			profiles[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		profiles = append(profiles, p)
	}
	return r.write(profiles)
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, found, err := r.read()
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("profiles file %s: %w", r.path, ErrNotFound)
	}

	kept := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.write(kept)
}

func (r *profileRepository) RawList(ctx context.Context) ([]map[string]any, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var docs []map[string]any
	found, err := utils.ReadJSON(r.path, &docs)
	if err != nil {
		return nil, found, fmt.Errorf("reading profiles %s: %w", r.path, err)
	}
	return docs, found, nil
}

func (r *profileRepository) ReplaceRaw(ctx context.Context, docs []map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if docs == nil {
		docs = []map[string]any{}
	}
	if err := utils.WriteJSON(r.path, docs); err != nil {
		return fmt.Errorf("writing profiles %s: %w", r.path, err)
	}
	return nil
}

func (r *profileRepository) Exists(ctx context.Context, id string) (bool, error) {
	profiles, _, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	_, ok := models.FindProfile(profiles, id)
	return ok, nil
}
