package services

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// SetToRedis menyimpan value (di-encode JSON) dengan masa berlaku ttl.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	if rdb == nil {
		return redis.ErrClosed
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, key, data, ttl).Err()
}

// GetFromRedis membaca key dan men-decode isinya ke dest.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, dest interface{}) error {
	if rdb == nil {
		return redis.ErrClosed
	}

	data, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// DeleteFromRedis menghapus satu key cache.
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if rdb == nil {
		return redis.ErrClosed
	}
	return rdb.Del(ctx, key).Err()
}
