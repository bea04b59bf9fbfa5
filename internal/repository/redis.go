package repository

import (
	"context"
	"encoding/json"
	"time"

	"sitepulse/internal/config"
	"sitepulse/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// SiteKeyPrefix prefixes cached site records
	SiteKeyPrefix = "site:"
	// DefaultSiteCacheTTL is used when no TTL is configured
	DefaultSiteCacheTTL = 10 * time.Minute
)

// cachedSite is the cache payload. It keeps the fields the JSON API hides.
type cachedSite struct {
	ID            int64     `json:"id"`
	PublicID      string    `json:"public_id"`
	Name          *string   `json:"name"`
	OwnerIdentity string    `json:"owner_identity"`
	OwnerKey      string    `json:"owner_key"`
	SecretToken   string    `json:"secret_token"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RedisRepository caches site records in Redis
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig, ttl time.Duration) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return newRedisRepository(rdb, ttl)
}

func newRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	if ttl <= 0 {
		ttl = DefaultSiteCacheTTL
	}
	return &RedisRepository{client: client, ttl: ttl}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveSite caches a site record
func (r *RedisRepository) SaveSite(ctx context.Context, site *model.Site) error {
	payload, err := json.Marshal(cachedSite{
		ID:            site.ID,
		PublicID:      site.PublicID,
		Name:          site.Name,
		OwnerIdentity: site.OwnerIdentity,
		OwnerKey:      site.OwnerKey,
		SecretToken:   site.SecretToken,
		CreatedAt:     site.CreatedAt,
		UpdatedAt:     site.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.siteKey(site.PublicID), payload, r.ttl).Err()
}

// GetSite returns a cached site record, or redis.Nil on a miss
func (r *RedisRepository) GetSite(ctx context.Context, publicID string) (*model.Site, error) {
	payload, err := r.client.Get(ctx, r.siteKey(publicID)).Bytes()
	if err != nil {
		return nil, err
	}

	var cached cachedSite
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, err
	}

	return &model.Site{
		ID:            cached.ID,
		PublicID:      cached.PublicID,
		Name:          cached.Name,
		OwnerIdentity: cached.OwnerIdentity,
		OwnerKey:      cached.OwnerKey,
		SecretToken:   cached.SecretToken,
		CreatedAt:     cached.CreatedAt,
		UpdatedAt:     cached.UpdatedAt,
	}, nil
}

// DeleteSite evicts a cached site record
func (r *RedisRepository) DeleteSite(ctx context.Context, publicID string) error {
	return r.client.Del(ctx, r.siteKey(publicID)).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) siteKey(publicID string) string {
	return SiteKeyPrefix + publicID
}
