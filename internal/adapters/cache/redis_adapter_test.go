package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redisclient "github.com/zatekoja/vibecheck/backend/internal/infrastructure/clients/redis"
)

func unreachableAdapter() *RedisAdapter {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewRedisAdapter(redisclient.NewFromRedis(client), "vibecheck:")
}

func TestRedisAdapter_PrefixesKeys(t *testing.T) {
	a := NewRedisAdapter(nil, "vibecheck:")
	assert.Equal(t, "vibecheck:geo:1", a.key("geo:1"))
}

func TestRedisAdapter_ConnectionErrorsAreNotMisses(t *testing.T) {
	a := unreachableAdapter()
	ctx := context.Background()

	_, err := a.Get(ctx, "k")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCacheMiss))

	assert.Error(t, a.Set(ctx, "k", []byte("v"), 10))
	assert.Error(t, a.Delete(ctx, "k"))

	_, err = a.Exists(ctx, "k")
	assert.Error(t, err)
}
