package session

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"cancha-client/internal/pkg/errs"
)

const sessionKey = "cancha:session"

// RedisBackend stores the session record as a single JSON value, so every
// save and clear is one atomic Redis command.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Load(ctx context.Context) (*Record, error) {
	raw, err := b.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to load session")
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		// An unreadable record is treated as no session rather than a
		// permanently wedged store.
		return nil, nil
	}
	return &rec, nil
}

func (b *RedisBackend) Save(ctx context.Context, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}
	if err := b.client.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
		return errs.Wrap(err, "failed to save session")
	}
	return nil
}

func (b *RedisBackend) Clear(ctx context.Context) error {
	if err := b.client.Del(ctx, sessionKey).Err(); err != nil {
		return errs.Wrap(err, "failed to clear session")
	}
	return nil
}
