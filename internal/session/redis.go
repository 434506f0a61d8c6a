package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the session as JSON under a single key.
type RedisSlot struct {
	client *redis.Client
	key    string
}

func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	if key == "" {
		key = "revisaai:session"
	}
	return &RedisSlot{client: client, key: key}
}

func (r *RedisSlot) Load(ctx context.Context) (*Session, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decode(b)
}

func (r *RedisSlot) Save(ctx context.Context, s *Session) error {
	b, err := encode(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, b, 0).Err()
}

func (r *RedisSlot) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}

// RedisDenylist keeps logged-out access tokens until they expire.
type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func denyKey(token string) string { return "denylist:access:" + token }

// Deny stores the token with the given TTL. A nil receiver or client is a no-op.
func (d *RedisDenylist) Deny(ctx context.Context, token string, ttl time.Duration) error {
	if d == nil || d.client == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denyKey(token), "1", ttl).Err()
}

func (d *RedisDenylist) IsDenied(ctx context.Context, token string) (bool, error) {
	if d == nil || d.client == nil {
		return false, nil
	}
	exists, err := d.client.Exists(ctx, denyKey(token)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
