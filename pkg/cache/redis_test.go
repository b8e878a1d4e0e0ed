package cache

import (
	"context"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRedis answers the three commands the cache issues
type memRedis struct {
	redis.Cmdable
	data map[string]string
	ttl  map[string]time.Duration
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (m *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	m.data[key] = string(value.([]byte))
	m.ttl[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (m *memRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisCache_MissSetHitInvalidate(t *testing.T) {
	mem := newMemRedis()
	c := NewRedisCache(mem, 5*time.Minute)
	ctx := context.Background()

	tours, err := c.GetTours(ctx)
	require.NoError(t, err)
	assert.Nil(t, tours)

	require.NoError(t, c.SetTours(ctx, []entity.Tour{{ID: 1, Title: "Song-Kul Trek", Price: "$650"}}))
	assert.Equal(t, 5*time.Minute, mem.ttl[toursKey])

	tours, err = c.GetTours(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, "Song-Kul Trek", tours[0].Title)

	require.NoError(t, c.InvalidateTours(ctx))
	tours, err = c.GetTours(ctx)
	require.NoError(t, err)
	assert.Nil(t, tours)
}

func TestRedisCache_CorruptValueIsAnError(t *testing.T) {
	mem := newMemRedis()
	mem.data[toursKey] = "{broken"

	_, err := NewRedisCache(mem, time.Minute).GetTours(context.Background())
	assert.Error(t, err)
}

func TestNewClient_NilWithoutAddress(t *testing.T) {
	assert.Nil(t, NewClient(utils.RedisConfig{}))

	client := NewClient(utils.RedisConfig{Addr: "localhost:6379", DB: 2})
	require.NotNil(t, client)
	assert.Equal(t, 2, client.Options().DB)
	assert.NoError(t, client.Close())
}

func TestNopCache(t *testing.T) {
	var c NopCache
	ctx := context.Background()

	require.NoError(t, c.SetTours(ctx, []entity.Tour{{ID: 1}}))
	tours, err := c.GetTours(ctx)
	assert.NoError(t, err)
	assert.Nil(t, tours)
	assert.NoError(t, c.InvalidateTours(ctx))
}
