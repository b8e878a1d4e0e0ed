package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const toursKey = "cache:tours"

type RedisCache struct {
	client   redis.Cmdable
	toursTTL time.Duration
}

// NewClient opens the shared Redis client, nil when no address is set
func NewClient(cfg utils.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

func NewRedisCache(client redis.Cmdable, toursTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, toursTTL: toursTTL}
}

// GetTours returns nil, nil on a miss
func (c *RedisCache) GetTours(ctx context.Context) ([]entity.Tour, error) {
	data, err := c.client.Get(ctx, toursKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var tours []entity.Tour
	if err := json.Unmarshal(data, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *RedisCache) SetTours(ctx context.Context, tours []entity.Tour) error {
	payload, err := json.Marshal(tours)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, toursKey, payload, c.toursTTL).Err()
}

func (c *RedisCache) InvalidateTours(ctx context.Context) error {
	return c.client.Del(ctx, toursKey).Err()
}

// NopCache never hits. Used when Redis is not configured.
type NopCache struct{}

func (NopCache) GetTours(context.Context) ([]entity.Tour, error) { return nil, nil }
func (NopCache) SetTours(context.Context, []entity.Tour) error   { return nil }
func (NopCache) InvalidateTours(context.Context) error           { return nil }
