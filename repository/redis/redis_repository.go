package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/classifieds/cmd/redis"
)

const sessionPrefix = "session:"

// ErrNoClient is returned when redis is not configured.
var ErrNoClient = errors.New("redis client not configured")

// Repository stores bearer-token sessions keyed by token id.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}
	return client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, ErrNoClient
	}
	return client.Get(ctx, sessionPrefix+sessionID).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}
