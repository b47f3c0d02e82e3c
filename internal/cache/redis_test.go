package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCacheKey(t *testing.T) {
	a := cacheKey("https://target1.p.rapidapi.com/search?q=milk")
	b := cacheKey("https://target1.p.rapidapi.com/search?q=eggs")

	assert.True(t, strings.HasPrefix(a, keyPrefix))
	assert.Len(t, a, len(keyPrefix)+64)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, cacheKey("https://target1.p.rapidapi.com/search?q=milk"))
}

func TestUnreachableRedisDegradesToMiss(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := &Redis{
		Client: redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		}),
		TTL: time.Minute,
		Log: zap.New(core),
	}
	defer r.Close()
	ctx := context.Background()

	r.Set(ctx, "k", []byte(`{}`))
	body, ok := r.Get(ctx, "k")

	assert.False(t, ok)
	assert.Nil(t, body)
	assert.Equal(t, 1, logs.FilterMessage("cache set failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("cache get failed").Len())
}
