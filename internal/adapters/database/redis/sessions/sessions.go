package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage keeps session-token -> user-id mappings with a TTL. Logging out
// deletes the token; expiry does the rest.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Set(ctx context.Context, token, userID string, expiration time.Duration) error {
	return s.redis.Set(ctx, token, userID, expiration).Err()
}

// Get returns the user id behind a session token; redis.Nil when the token
// is unknown or expired.
func (s *Storage) Get(ctx context.Context, token string) (string, error) {
	return s.redis.Get(ctx, token).Result()
}

func (s *Storage) Delete(ctx context.Context, token string) error {
	return s.redis.Del(ctx, token).Err()
}
