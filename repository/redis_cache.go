package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"interest-agent/domain"
)

const (
	redisKeyPrefix = "interest-agent:"
	redisCacheTTL  = 24 * time.Hour
)

// RedisCache shares projection results across sessions through redis,
// serialized as JSON.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (domain.InterestResult, bool) {
	raw, err := r.client.Get(r.ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return domain.InterestResult{}, false
	}
	var result domain.InterestResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return domain.InterestResult{}, false
	}
	return result, true
}

func (r *RedisCache) Set(key string, result domain.InterestResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, redisKeyPrefix+key, raw, redisCacheTTL).Err()
}
