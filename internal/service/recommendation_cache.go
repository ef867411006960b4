package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
	"github.com/strike9903/poliprint-studio-sub002/pkg/redis"
)

// RecommendationCache keeps scored (pre-variant) recommendation lists in two
// layers: an in-process map for the hot path and Redis for sharing between
// instances. Variant assignment happens after retrieval, so cached entries
// never pin a user to a bucket.
type RecommendationCache struct {
	redis    *redis.Client
	logger   *zap.Logger
	memCache *memoryCache
	ttl      time.Duration
}

type memoryCache struct {
	mu        sync.RWMutex
	data      map[string]*cacheEntry
	maxAge    time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

type cacheEntry struct {
	recs     []models.Recommendation
	cachedAt time.Time
}

// NewRecommendationCache creates the cache. The Redis client may be nil, in
// which case only the memory layer is used.
func NewRecommendationCache(redisClient *redis.Client, ttl time.Duration, logger *zap.Logger) *RecommendationCache {
	return &RecommendationCache{
		redis:    redisClient,
		logger:   logger,
		memCache: newMemoryCache(ttl),
		ttl:      ttl,
	}
}

func newMemoryCache(maxAge time.Duration) *memoryCache {
	cache := &memoryCache{
		data:   make(map[string]*cacheEntry),
		maxAge: maxAge,
		done:   make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

// Key derives a deterministic cache key from the profile facets that drive
// scoring plus the order amount.
func (rc *RecommendationCache) Key(profile models.PsychologyProfile, amount float64) string {
	payload, err := json.Marshal(struct {
		Profile models.PsychologyProfile `json:"profile"`
		Amount  float64                  `json:"amount"`
	}{profile, amount})
	if err != nil {
		return fmt.Sprintf("recs:%s:%.2f", profile.DeviceType, amount)
	}
	sum := sha256.Sum256(payload)
	return "recs:" + hex.EncodeToString(sum[:16])
}

// Get retrieves a scored list (checks memory first, then Redis).
func (rc *RecommendationCache) Get(ctx context.Context, key string) ([]models.Recommendation, bool) {
	if recs, ok := rc.memCache.get(key); ok {
		return recs, true
	}

	if rc.redis == nil {
		return nil, false
	}

	data, err := rc.redis.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	var recs []models.Recommendation
	if err := json.Unmarshal([]byte(data), &recs); err != nil {
		rc.logger.Warn("discarding undecodable cache entry",
			zap.String("key", key),
			zap.Error(err))
		if delErr := rc.redis.Delete(ctx, key); delErr != nil {
			rc.logger.Warn("failed to evict cache entry",
				zap.String("key", key),
				zap.Error(delErr))
		}
		return nil, false
	}

	rc.memCache.set(key, recs)
	return recs, true
}

// Set stores a scored list in both layers.
func (rc *RecommendationCache) Set(ctx context.Context, key string, recs []models.Recommendation) {
	rc.memCache.set(key, recs)

	if rc.redis == nil {
		return
	}

	data, err := json.Marshal(recs)
	if err != nil {
		rc.logger.Error("failed to marshal recommendations for cache", zap.Error(err))
		return
	}

	if err := rc.redis.Set(ctx, key, data, rc.ttl); err != nil {
		rc.logger.Warn("failed to cache recommendations in redis",
			zap.String("key", key),
			zap.Error(err))
	}
}

// Close stops the memory layer's cleanup goroutine. Safe to call more than
// once.
func (rc *RecommendationCache) Close() {
	rc.memCache.closeOnce.Do(func() {
		close(rc.memCache.done)
	})
}

func (mc *memoryCache) get(key string) ([]models.Recommendation, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	entry, exists := mc.data[key]
	if !exists {
		return nil, false
	}

	if time.Since(entry.cachedAt) > mc.maxAge {
		return nil, false
	}

	return entry.recs, true
}

func (mc *memoryCache) set(key string, recs []models.Recommendation) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.data[key] = &cacheEntry{
		recs:     recs,
		cachedAt: time.Now(),
	}
}

// cleanup periodically removes expired entries until Close is called.
func (mc *memoryCache) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-mc.done:
			return
		case <-ticker.C:
			mc.mu.Lock()
			now := time.Now()
			for key, entry := range mc.data {
				if now.Sub(entry.cachedAt) > mc.maxAge {
					delete(mc.data, key)
				}
			}
			mc.mu.Unlock()
		}
	}
}
