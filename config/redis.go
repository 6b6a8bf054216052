package config

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient adalah koneksi Redis global, boleh nil bila Redis tidak tersedia.
var RedisClient *redis.Client

// ConnectRedis membuka koneksi baru ke Redis dan memastikan server merespons.
func ConnectRedis() (*redis.Client, error) {
	if RedisClient != nil {
		return RedisClient, nil
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := rdb.Ping(Ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
