package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"keyforest/internal/models"
	"keyforest/internal/repositories"
)

// CacheService keeps a local copy of each profile's shortcuts so the
// keyboard can be drawn before the store is read.
type CacheService interface {
	Load(ctx context.Context, profileID string) (models.ShortcutSet, bool)
	Store(ctx context.Context, profileID string, set models.ShortcutSet) error
	Forget(ctx context.Context, profileID string) error
}

type cacheService struct {
	cache repositories.ShortcutCacheRepository
	log   *zap.Logger
	now   func() time.Time
}

func NewCacheService(cache repositories.ShortcutCacheRepository, log *zap.Logger) CacheService {
	if log == nil {
		log = zap.NewNop()
	}
	return &cacheService{cache: cache, log: log, now: time.Now}
}

// Load reports false on a miss or on any cache failure.
func (s *cacheService) Load(ctx context.Context, profileID string) (models.ShortcutSet, bool) {
	entry, err := s.cache.Get(ctx, profileID)
	if err != nil {
		s.log.Warn("reading shortcut cache", zap.String("profile", profileID), zap.Error(err))
		return nil, false
	}
	if entry == nil {
		return nil, false
	}

	var set models.ShortcutSet
	if err := json.Unmarshal([]byte(entry.Payload), &set); err != nil || set == nil {
		s.log.Warn("discarding unreadable cache entry", zap.String("profile", profileID), zap.Error(err))
		return nil, false
	}
	set.Normalize()
	return set, true
}

func (s *cacheService) Store(ctx context.Context, profileID string, set models.ShortcutSet) error {
	if set == nil {
		set = models.NewShortcutSet()
	}
	payload, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return s.cache.Put(ctx, &models.CachedShortcutSet{
		ProfileID: profileID,
		Payload:   string(payload),
		UpdatedAt: s.now(),
	})
}

func (s *cacheService) Forget(ctx context.Context, profileID string) error {
	return s.cache.Delete(ctx, profileID)
}
