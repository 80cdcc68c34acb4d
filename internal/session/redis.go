package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgredis "github.com/Priyadharshini-2004-S/Interview-Agent/pkg/redis"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions as JSON values in Redis with a TTL, so abandoned
// interviews expire on their own. It is still ephemeral state, not an
// archive: an expired or evicted session is simply gone.
type RedisStore struct {
	client *pkgredis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store. ttl bounds how long an idle
// session survives; each Update refreshes it.
func NewRedisStore(client *pkgredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	return r.put(ctx, s)
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+id)
	if err != nil {
		if pkgredis.IsNilError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting session %s: %w", id, err)
	}
	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", id, err)
	}
	return &s, nil
}

func (r *RedisStore) Update(ctx context.Context, s *Session) error {
	return r.put(ctx, s)
}

func (r *RedisStore) put(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", s.ID, err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+s.ID, data, r.ttl); err != nil {
		return fmt.Errorf("storing session %s: %w", s.ID, err)
	}
	return nil
}
