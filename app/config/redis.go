package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RDB is the optional Redis client used for change notifications. It stays nil
// when REDIS_ADDR is unset or the server is unreachable; callers must check.
var RDB *redis.Client

var Ctx = context.Background()

func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		log.Println("REDIS_ADDR not set, change notifications stay in-process")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		log.Printf("Redis unreachable, change notifications stay in-process: %v", err)
		RDB = nil
		return
	}

	log.Println("Redis connected successfully")
}
