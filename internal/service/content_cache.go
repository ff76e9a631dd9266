package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ContentCache stores JSON snapshots of the lesson content.
type ContentCache interface {
	// Get decodes the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Clear drops every cached entry.
	Clear(ctx context.Context) error
}

const contentKeyPrefix = "nurvo:content:"

type RedisContentCache struct {
	Redis *redis.Client
}

func NewRedisContentCache(rdb *redis.Client) *RedisContentCache {
	return &RedisContentCache{Redis: rdb}
}

func (c *RedisContentCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := c.Redis.Get(ctx, contentKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisContentCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, contentKeyPrefix+key, data, ttl).Err()
}

func (c *RedisContentCache) Clear(ctx context.Context) error {
	iter := c.Redis.Scan(ctx, 0, contentKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.Redis.Del(ctx, keys...).Err()
}
