// Package storage provides the durable session slot implementations. The
// slot is a single last-writer-wins register; multiple processes sharing
// one slot race without reconciliation, which the console accepts.
package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
)

// RedisStorage persists the serialized session under a single Redis key.
// All round trips go through a circuit breaker so a dead Redis degrades to
// logged-out navigation instead of hanging every request.
type RedisStorage struct {
	client *redis.Client
	key    string
	cb     *gobreaker.CircuitBreaker
}

var _ ports.SessionStorage = (*RedisStorage)(nil)

func NewRedisStorage(client *redis.Client, key string, cb *gobreaker.CircuitBreaker) *RedisStorage {
	return &RedisStorage{client: client, key: key, cb: cb}
}

func (s *RedisStorage) Load(ctx context.Context) (domain.Session, error) {
	raw, err := s.cb.Execute(func() (interface{}, error) {
		val, err := s.client.Get(ctx, s.key).Result()
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNoSession
		}
		return val, err
	})
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			return domain.EmptySession(), ports.ErrNoSession
		}
		return domain.EmptySession(), err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw.(string)), &session); err != nil {
		// Malformed blob is the same as no blob.
		return domain.EmptySession(), ports.ErrNoSession
	}
	return session, nil
}

func (s *RedisStorage) Save(ctx context.Context, session domain.Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}
	_, err = s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, s.key, blob, 0).Err()
	})
	return err
}
