package apiclient

import (
	"context"
	"strings"
	"sync"
	"time"

	redisdb "github.com/drevmart/drevmart-backend/pkg/redis"
)

// TokenStore holds the upstream CMS auth token between requests.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// MemoryTokenStore keeps the token in process memory.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryTokenStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
	return nil
}

func (s *MemoryTokenStore) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// RedisTokenStore persists the token so it survives restarts and is shared
// across replicas.
type RedisTokenStore struct {
	client *redisdb.Client
	scope  string
	ttl    time.Duration
}

// NewRedisTokenStore scopes the stored token under the given name, typically
// "upstream". A zero TTL keeps the token until it is cleared.
func NewRedisTokenStore(client *redisdb.Client, scope string, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, scope: scope, ttl: ttl}
}

func (s *RedisTokenStore) Token(ctx context.Context) (string, error) {
	value, err := s.client.Get(ctx, s.client.AuthTokenKey(s.scope))
	if err != nil {
		if redisdb.IsNil(err) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (s *RedisTokenStore) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return s.ClearToken(ctx)
	}
	return s.client.Set(ctx, s.client.AuthTokenKey(s.scope), token, s.ttl)
}

func (s *RedisTokenStore) ClearToken(ctx context.Context) error {
	return s.client.Del(ctx, s.client.AuthTokenKey(s.scope))
}
