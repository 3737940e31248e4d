package prefs

import (
	"context"
	"errors"
	"time"

	backend "github.com/redis/go-redis/v9"

	"card-garden/logger"
)

// RedisStore keeps preferences in Redis, for kiosks that share one set of
// preferences across machines.
type RedisStore struct {
	client  *backend.Client
	prefix  string
	timeout time.Duration
	log     *logger.Logger
}

type RedisOption func(*RedisStore)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithTimeout bounds every round trip.
func WithTimeout(d time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.timeout = d
	}
}

// WithLogger reports read failures, which Get otherwise treats as absent.
func WithLogger(log *logger.Logger) RedisOption {
	return func(s *RedisStore) {
		s.log = log
	}
}

func NewRedisStore(addr, password string, db int, opts ...RedisOption) *RedisStore {
	return NewRedisStoreFromClient(backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), opts...)
}

func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:  client,
		prefix:  "card-garden:prefs:",
		timeout: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(k string) string { return s.prefix + k }

// Get returns the stored value. Unreachable servers read as absent so the
// caller falls back to defaults.
func (s *RedisStore) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if !errors.Is(err, backend.Nil) {
			s.log.With("key", key).Error(err, "redis preference read failed")
		}
		return "", false
	}
	return v, true
}

func (s *RedisStore) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
