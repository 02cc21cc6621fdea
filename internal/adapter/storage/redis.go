package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.BlobStorage = (*RedisStorage)(nil)

// A RedisStorage keeps blobs in Redis without expiration: the cart
// persists until explicitly emptied.
type RedisStorage struct {
	cl *redis.Client
}

func NewRedisStorage(ctx context.Context, addr string) (RedisStorage, error) {
	const op = "RedisStorage"
	log := slog.With("op", op)

	cl := redis.NewClient(&redis.Options{Addr: addr})
	if err := cl.Ping(ctx).Err(); err != nil {
		return RedisStorage{}, fmt.Errorf(
			"%s: redis is unavailable: %w", op, err,
		)
	}

	log.Info("redis is available", "addr", addr)
	return RedisStorage{cl}, nil
}

func (s RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "RedisStorage.Get"

	b, err := s.cl.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %q: %w", op, key, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func (s RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	const op = "RedisStorage.Set"

	if err := s.cl.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisStorage) Close() {
	const op = "RedisStorage.Close"
	log := slog.With("op", op)

	log.Info("closing redis client...")

	if err := s.cl.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("redis client is closed")
}
