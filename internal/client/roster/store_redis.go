package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// rosterKey is the single entry holding the serialized contact list.
const rosterKey = "safesignal:contacts"

// RedisKV persists the roster in Redis so it survives client restarts.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (s *RedisKV) Load(ctx context.Context) ([]byte, bool, error) {
	payload, err := s.client.Get(ctx, rosterKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load roster: %w", err)
	}
	return payload, true, nil
}

func (s *RedisKV) Save(ctx context.Context, payload []byte) error {
	if err := s.client.Set(ctx, rosterKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}
