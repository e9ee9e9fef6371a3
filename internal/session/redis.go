package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps the session registry in redis so sessions survive server
// restarts and are shared across instances.
type RedisStore struct {
	client           *redis.Client
	operationTimeout time.Duration
}

func NewRedisStore(client *redis.Client, operationTimeout time.Duration) *RedisStore {
	return &RedisStore{
		client:           client,
		operationTimeout: operationTimeout,
	}
}

func (s *RedisStore) Save(ctx context.Context, id string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	return s.client.Set(ctx, redisKeyPrefix+id, 1, ttl).Err()
}

func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	n, err := s.client.Exists(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	return s.client.Del(ctx, redisKeyPrefix+id).Err()
}
