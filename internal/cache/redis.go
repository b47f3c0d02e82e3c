package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "pricecompare:search:"

// Redis guarda respostas de busca por algumas horas para poupar cota da RapidAPI
// entre execuções seguidas. Falhas do Redis nunca interrompem a coleta.
type Redis struct {
	Client *redis.Client
	TTL    time.Duration
	Log    *zap.Logger
}

func NewRedis(addr string, ttl time.Duration, log *zap.Logger) *Redis {
	return &Redis{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
		TTL:    ttl,
		Log:    log,
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.Client.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.Log.Warn("cache get failed", zap.Error(err))
		}
		return nil, false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key string, body []byte) {
	if err := r.Client.Set(ctx, cacheKey(key), body, r.TTL).Err(); err != nil {
		r.Log.Warn("cache set failed", zap.Error(err))
	}
}

func (r *Redis) Close() error {
	return r.Client.Close()
}

func cacheKey(u string) string {
	sum := sha256.Sum256([]byte(u))
	return keyPrefix + hex.EncodeToString(sum[:])
}
