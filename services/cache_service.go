package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jaiohri/Portfolio/config"

	"github.com/go-redis/redis/v8"
	gocache "github.com/patrickmn/go-cache"
)

// Cache keys for the public page queries
const (
	CacheKeySkills      = "page:skills"
	CacheKeyProjects    = "page:projects"
	CacheKeyExperiences = "page:experiences"
)

const cacheTTL = 5 * time.Minute

// InterfaceCacheService defines the read-through cache contract
type InterfaceCacheService interface {
	// Fetch unmarshals the cached value for key into dest, calling
	// loader and caching its result on a miss.
	Fetch(key string, dest interface{}, loader func() (interface{}, error)) error
	// Invalidate drops the given keys
	Invalidate(keys ...string)
}

// CacheService caches page queries in Redis when one is configured and
// reachable, and in process memory otherwise. Values are stored as JSON
// so both backends behave identically.
type CacheService struct {
	Config *config.Config
	redis  *redis.Client
	local  *gocache.Cache
}

// NewCacheService creates a cache service, degrading to the in-process
// cache when Redis is absent or unreachable
func NewCacheService(cfg *config.Config) *CacheService {
	s := &CacheService{
		Config: cfg,
		local:  gocache.New(cacheTTL, 10*time.Minute),
	}

	if cfg.RedisHost != "" {
		client := redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			config.Warning("Redis connection test failed: %v, falling back to in-process cache", err)
		} else {
			s.redis = client
		}
	}

	return s
}

// Fetch implements InterfaceCacheService
func (s *CacheService) Fetch(key string, dest interface{}, loader func() (interface{}, error)) error {
	if data, ok := s.get(key); ok {
		if err := json.Unmarshal(data, dest); err == nil {
			return nil
		}
		// A corrupt entry is treated as a miss
		s.Invalidate(key)
	}

	value, err := loader()
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.set(key, data)

	return json.Unmarshal(data, dest)
}

// Invalidate implements InterfaceCacheService
func (s *CacheService) Invalidate(keys ...string) {
	if s.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.redis.Del(ctx, keys...).Err(); err != nil {
			config.Warning("failed to invalidate cache keys %v: %v", keys, err)
		}
		return
	}
	for _, key := range keys {
		s.local.Delete(key)
	}
}

func (s *CacheService) get(key string) ([]byte, bool) {
	if s.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		data, err := s.redis.Get(ctx, key).Bytes()
		if err != nil {
			return nil, false
		}
		return data, true
	}

	if value, found := s.local.Get(key); found {
		if data, ok := value.([]byte); ok {
			return data, true
		}
	}
	return nil, false
}

func (s *CacheService) set(key string, data []byte) {
	if s.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.redis.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			config.Warning("failed to cache key %s: %v", key, err)
		}
		return
	}
	s.local.Set(key, data, gocache.DefaultExpiration)
}
