package service

import (
	"context"
	"fmt"
	"time"

	"sitepulse/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=filter.go -destination=../mocks/redis_client_mock.go -package=mocks

const siteFilterKey = "sitepulse:sites:bloom"

// RedisClient defines the interface for Redis client operations
type RedisClient interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// SiteFilter remembers which public ids have been registered.
// A negative answer is definite; a positive one may be a false positive.
type SiteFilter struct {
	client    RedisClient
	capacity  int64
	errorRate float64
}

// NewSiteFilter creates a new site filter and reserves the Bloom Filter if needed
func NewSiteFilter(client RedisClient, cfg *config.FilterConfig) *SiteFilter {
	f := &SiteFilter{
		client:    client,
		capacity:  cfg.Capacity,
		errorRate: cfg.ErrorRate,
	}

	f.reserve(context.Background())

	return f
}

func (f *SiteFilter) reserve(ctx context.Context) {
	exists, err := f.client.Exists(ctx, siteFilterKey).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check site filter existence")
		return
	}

	if exists > 0 {
		log.Info().Msg("Site filter already exists")
		return
	}

	cmd := f.client.Do(ctx, "BF.RESERVE", siteFilterKey, f.errorRate, f.capacity)
	if err := cmd.Err(); err != nil {
		log.Warn().Err(err).Msg("BF.RESERVE not available, site filter falls back to plain keys")
	} else {
		log.Info().Msgf("Site filter created with capacity=%d, error_rate=%f", f.capacity, f.errorRate)
	}
}

// Add marks a public id as registered
func (f *SiteFilter) Add(ctx context.Context, publicID string) error {
	cmd := f.client.Do(ctx, "BF.ADD", siteFilterKey, publicID)
	if err := cmd.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Debug().Err(err).Msg("BF.ADD not available, using SET as fallback")
		return f.client.Set(ctx, f.fallbackKey(publicID), 1, 0).Err()
	}
	return nil
}

// Exists reports whether a public id might have been registered
func (f *SiteFilter) Exists(ctx context.Context, publicID string) (bool, error) {
	cmd := f.client.Do(ctx, "BF.EXISTS", siteFilterKey, publicID)
	result, err := cmd.Int()
	if err == nil {
		return result == 1, nil
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	log.Debug().Err(err).Msg("BF.EXISTS not available, using EXISTS as fallback")
	exists, err := f.client.Exists(ctx, f.fallbackKey(publicID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (f *SiteFilter) fallbackKey(publicID string) string {
	return fmt.Sprintf("%s:fb:%s", siteFilterKey, publicID)
}

// GetCapacity returns the capacity of the Bloom Filter
func (f *SiteFilter) GetCapacity() int64 {
	return f.capacity
}

// IsAvailable checks if the RedisBloom module is serving the filter
func (f *SiteFilter) IsAvailable(ctx context.Context) bool {
	return f.client.Do(ctx, "BF.INFO", siteFilterKey).Err() == nil
}
