package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-booking/internal/infra"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one hash per scope; every write refreshes the scope's TTL so
// abandoned carts expire the way cleared browser profiles would.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) GetItem(ctx context.Context, scope, key string) (string, bool, error) {
	v, err := r.client.HGet(ctx, hashKey(scope), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapRepoErr("redis hget failed", err)
	}
	return v, true, nil
}

func (r *RedisStore) SetItem(ctx context.Context, scope, key, value string) error {
	hk := hashKey(scope)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hk, key, value)
		if r.ttl > 0 {
			pipe.Expire(ctx, hk, r.ttl)
		}
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr("redis hset failed", err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func hashKey(scope string) string {
	return fmt.Sprintf("clientstorage:%s", scope)
}
