package pagecache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "ignite-shop:page:"

// RedisStore shares rendered pages between replicas, so a page regenerated
// by one instance is served by all of them.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: defaultRedisKeyPrefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Page, bool, error) {
	raw, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Page{}, false, nil
	}
	if err != nil {
		return Page{}, false, err
	}

	var p Page
	if err := json.Unmarshal(raw, &p); err != nil {
		return Page{}, false, err
	}
	return p, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, page Page) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.prefix+key, raw, 0).Err()
}
