package services

import (
  "context"
  "encoding/json"
  "fmt"
  "time"
  "github.com/google/uuid"
  "github.com/redis/go-redis/v9"
  "golang.org/x/sync/errgroup"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/repos"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

// hubCacheTTL keeps the bundle fresh enough for feed rendering without
// re-reading four sources on every request.
const hubCacheTTL = 60 * time.Second

// HubView is the unified personalization bundle served to feed surfaces.
type HubView struct {
  ShopperProfile *types.ShopperProfile `json:"shopper_profile,omitempty"`
  Preferences    *types.UserPreference `json:"preferences,omitempty"`
  TopPreferences *TopPreferences       `json:"top_preferences,omitempty"`
  EventCount     int64                 `json:"event_count"`
  GeneratedAt    time.Time             `json:"generated_at"`
}

// PersonalizationHubService assembles the cross-source personalization view
// behind a short redis cache.
type PersonalizationHubService interface {
  GetHub(ctx context.Context, userID uuid.UUID) (*HubView, error)
  Invalidate(ctx context.Context, userID uuid.UUID)
}

// HubCache is the byte cache in front of hub assembly. Get reports a miss as
// (nil, nil). A nil HubCache disables caching entirely.
type HubCache interface {
  Get(ctx context.Context, key string) ([]byte, error)
  Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
  Del(ctx context.Context, key string) error
}

type redisHubCache struct {
  rdb *redis.Client
}

func NewRedisHubCache(rdb *redis.Client) HubCache {
  return &redisHubCache{rdb: rdb}
}

func (c *redisHubCache) Get(ctx context.Context, key string) ([]byte, error) {
  raw, err := c.rdb.Get(ctx, key).Bytes()
  if err == redis.Nil {
    return nil, nil
  }
  return raw, err
}

func (c *redisHubCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
  return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *redisHubCache) Del(ctx context.Context, key string) error {
  return c.rdb.Del(ctx, key).Err()
}

type personalizationHubService struct {
  cache       HubCache
  shopper     ShopperProfileService
  preferences PreferencesService
  profiles    StyleProfileService
  eventRepo   repos.StyleProfileEventRepo
  log         *logger.Logger
}

func NewPersonalizationHubService(
  cache HubCache,
  shopper ShopperProfileService,
  preferences PreferencesService,
  profiles StyleProfileService,
  eventRepo repos.StyleProfileEventRepo,
  baseLog *logger.Logger,
) PersonalizationHubService {
  svcLog := baseLog.With("service", "PersonalizationHubService")
  return &personalizationHubService{
    cache:       cache,
    shopper:     shopper,
    preferences: preferences,
    profiles:    profiles,
    eventRepo:   eventRepo,
    log:         svcLog,
  }
}

func hubCacheKey(userID uuid.UUID) string {
  return fmt.Sprintf("personalization:hub:%s", userID)
}

func (s *personalizationHubService) GetHub(ctx context.Context, userID uuid.UUID) (*HubView, error) {
  if s.cache != nil {
    raw, err := s.cache.Get(ctx, hubCacheKey(userID))
    if err != nil {
      s.log.Warn("hub cache read failed", "user_id", userID, "error", err)
    } else if raw != nil {
      var cached HubView
      if err := json.Unmarshal(raw, &cached); err == nil {
        return &cached, nil
      }
    }
  }

  view := &HubView{GeneratedAt: time.Now().UTC()}

  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error {
    profile, err := s.shopper.Get(gctx, userID)
    if err != nil {
      return err
    }
    view.ShopperProfile = profile
    return nil
  })
  g.Go(func() error {
    preference, err := s.preferences.Get(gctx, userID)
    if err != nil {
      return err
    }
    view.Preferences = preference
    return nil
  })
  g.Go(func() error {
    prefs, err := s.profiles.GetTopPreferences(gctx, userID)
    if err != nil {
      return err
    }
    view.TopPreferences = prefs
    return nil
  })
  g.Go(func() error {
    count, err := s.eventRepo.CountByUser(gctx, nil, userID)
    if err != nil {
      return err
    }
    view.EventCount = count
    return nil
  })
  if err := g.Wait(); err != nil {
    return nil, fmt.Errorf("assemble personalization hub: %w", err)
  }

  if s.cache != nil {
    if raw, err := json.Marshal(view); err == nil {
      if err := s.cache.Set(ctx, hubCacheKey(userID), raw, hubCacheTTL); err != nil {
        s.log.Warn("hub cache write failed", "user_id", userID, "error", err)
      }
    }
  }
  return view, nil
}

func (s *personalizationHubService) Invalidate(ctx context.Context, userID uuid.UUID) {
  if s.cache == nil {
    return
  }
  if err := s.cache.Del(ctx, hubCacheKey(userID)); err != nil {
    s.log.Warn("hub cache invalidate failed", "user_id", userID, "error", err)
  }
}
