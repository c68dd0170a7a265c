// Package throttle owns the per-pair complaint throttling keys that a new
// charging session resets.
package throttle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix          = "complaints:throttle"
	defaultDialTimeout = 5 * time.Second
	defaultIOTimeout   = 3 * time.Second
)

// NewRedisClient returns a configured go-redis client and validates the
// connection with PING.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("redis: addr is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultIOTimeout,
		WriteTimeout: defaultIOTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Store keeps throttle state in Redis. A nil *Store is valid and does nothing.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(a, b uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, a, b)
}

// Clear drops the throttle in both directions of the pair.
func (s *Store) Clear(ctx context.Context, a, b uuid.UUID) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Del(ctx, key(a, b), key(b, a)).Err()
}
