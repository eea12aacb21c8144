// File: azulpool/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"azulpool/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the dedicated Redis client for admin sessions.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client used for admin session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the admin session Redis client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
