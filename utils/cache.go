package utils

import (
	"context"
	"log"
	"time"

	"github.com/Sridhar1233sri/consultancy/config"

	"github.com/go-redis/redis/v8"
)

// ChatCacheClient is the dedicated client for assistant conversation history.
var ChatCacheClient *redis.Client

// InitChatCache initializes the Redis client for conversation caching.
func InitChatCache() {
	ChatCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Chat): %v", err)
	}
}

// GetChatCacheClient returns the Redis client for conversation caching.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		InitChatCache()
	}
	return ChatCacheClient
}
