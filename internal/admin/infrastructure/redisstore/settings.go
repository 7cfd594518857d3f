package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "settings:"

// Store reads settings from the hosted key/value service. Only lookups exist;
// settings are written out of band.
type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get returns the value for key, or an empty string with a nil error when the
// key is absent.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
