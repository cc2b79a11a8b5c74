package venue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
)

const (
	listKey         = "holidaze:venues:all"
	detailKeyPrefix = "holidaze:venue:"
)

// Cache is the read-through cache for upstream venue data. All data of
// record lives upstream; cache failures degrade to upstream fetches and
// are logged, never returned.
type Cache interface {
	GetList(ctx context.Context) ([]noroff.Venue, bool)
	SetList(ctx context.Context, venues []noroff.Venue)
	InvalidateList(ctx context.Context)
	GetDetail(ctx context.Context, id string) (*noroff.Venue, bool)
	SetDetail(ctx context.Context, v *noroff.Venue)
	InvalidateDetail(ctx context.Context, id string)
}

// RedisCache caches venue lists and details in Redis as JSON.
type RedisCache struct {
	client    *redis.Client
	listTTL   time.Duration
	detailTTL time.Duration
}

// NewRedisCache creates a venue cache.
func NewRedisCache(client *redis.Client, listTTL, detailTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, listTTL: listTTL, detailTTL: detailTTL}
}

func (c *RedisCache) GetList(ctx context.Context) ([]noroff.Venue, bool) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("venue list cache read failed")
		}
		return nil, false
	}

	var venues []noroff.Venue
	if err := json.Unmarshal(raw, &venues); err != nil {
		log.Warn().Err(err).Msg("venue list cache entry corrupt, dropping")
		c.InvalidateList(ctx)
		return nil, false
	}
	return venues, true
}

func (c *RedisCache) SetList(ctx context.Context, venues []noroff.Venue) {
	payload, err := json.Marshal(venues)
	if err != nil {
		log.Warn().Err(err).Msg("venue list cache encode failed")
		return
	}
	if err := c.client.Set(ctx, listKey, payload, c.listTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("venue list cache write failed")
	}
}

func (c *RedisCache) InvalidateList(ctx context.Context) {
	if err := c.client.Del(ctx, listKey).Err(); err != nil {
		log.Warn().Err(err).Msg("venue list cache invalidation failed")
	}
}

func (c *RedisCache) GetDetail(ctx context.Context, id string) (*noroff.Venue, bool) {
	raw, err := c.client.Get(ctx, detailKeyPrefix+id).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("venue_id", id).Msg("venue detail cache read failed")
		}
		return nil, false
	}

	var v noroff.Venue
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn().Err(err).Str("venue_id", id).Msg("venue detail cache entry corrupt, dropping")
		c.InvalidateDetail(ctx, id)
		return nil, false
	}
	return &v, true
}

func (c *RedisCache) SetDetail(ctx context.Context, v *noroff.Venue) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("venue_id", v.ID).Msg("venue detail cache encode failed")
		return
	}
	if err := c.client.Set(ctx, detailKeyPrefix+v.ID, payload, c.detailTTL).Err(); err != nil {
		log.Warn().Err(err).Str("venue_id", v.ID).Msg("venue detail cache write failed")
	}
}

func (c *RedisCache) InvalidateDetail(ctx context.Context, id string) {
	if err := c.client.Del(ctx, detailKeyPrefix+id).Err(); err != nil {
		log.Warn().Err(err).Str("venue_id", id).Msg("venue detail cache invalidation failed")
	}
}
