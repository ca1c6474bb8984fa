package assistant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Sridhar1233sri/consultancy/models"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "chat:ctx:"

// historyWindow caps how many exchanges are retained per conversation.
const historyWindow = 5

// RedisConversationStore keeps conversation history in Redis with a TTL.
type RedisConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisConversationStore(client *redis.Client, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{client: client, ttl: ttl}
}

func (s *RedisConversationStore) Get(ctx context.Context, conversationID string) ([]models.ChatExchange, error) {
	key := chatContextPrefix + conversationID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var history []models.ChatExchange
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *RedisConversationStore) Append(ctx context.Context, conversationID string, exchange models.ChatExchange) error {
	history, err := s.Get(ctx, conversationID)
	if err != nil {
		return err
	}
	history = append(history, exchange)
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	key := chatContextPrefix + conversationID
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisConversationStore) Clear(ctx context.Context, conversationID string) error {
	key := chatContextPrefix + conversationID
	return s.client.Del(ctx, key).Err()
}
