package dedup

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"parkgate/internal/pkg/errs"
)

// RedisStore keeps one key per processed webhook delivery id. Keys carry no
// expiry: a delivery id, once recorded, stays recorded.
//
// Get and Set are deliberately separate calls, mirroring the flow's
// check-then-act sequence; callers that need an atomic claim should add a
// SetNX-based variant instead of changing these.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrap(err, "failed to read dedup record")
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errs.Wrap(err, "failed to write dedup record")
	}
	return nil
}
