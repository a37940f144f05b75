package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/zacharvey88/teatime-collective-sub000/config"
)

// Redis holds session carts and carries the new-order pub/sub channel for
// the admin dashboard feed.
var Redis *redis.Client

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
	})
	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis ping failed: %v", err)
	}
}
