package search

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/drevmart/drevmart-backend/pkg/errors"
	redisdb "github.com/drevmart/drevmart-backend/pkg/redis"
)

// MaxRecentQueries bounds the per-session search history.
const MaxRecentQueries = 5

// HistoryStore persists a session's recent queries as an ordered list,
// most recent first.
type HistoryStore interface {
	Load(ctx context.Context, sessionID string) ([]string, error)
	Save(ctx context.Context, sessionID string, queries []string) error
	Clear(ctx context.Context, sessionID string) error
}

// Remember pushes a committed query onto the history. A repeated query moves
// to the front instead of duplicating. Whitespace-only queries are dropped.
func Remember(queries []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return queries
	}

	updated := make([]string, 0, MaxRecentQueries)
	updated = append(updated, query)
	for _, existing := range queries {
		if existing == query {
			continue
		}
		updated = append(updated, existing)
		if len(updated) == MaxRecentQueries {
			break
		}
	}
	return updated
}

// History manages per-session recent queries on top of a store.
type History struct {
	store HistoryStore
}

func NewHistory(store HistoryStore) *History {
	return &History{store: store}
}

func (h *History) Recent(ctx context.Context, sessionID string) ([]string, error) {
	queries, err := h.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if queries == nil {
		queries = []string{}
	}
	return queries, nil
}

// Commit records a query and returns the updated history.
func (h *History) Commit(ctx context.Context, sessionID, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return h.Recent(ctx, sessionID)
	}
	queries, err := h.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	updated := Remember(queries, query)
	if err := h.store.Save(ctx, sessionID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (h *History) Clear(ctx context.Context, sessionID string) error {
	return h.store.Clear(ctx, sessionID)
}

// RedisHistoryStore keeps histories in Redis under a per-session key.
type RedisHistoryStore struct {
	client *redisdb.Client
}

func NewRedisHistoryStore(client *redisdb.Client) *RedisHistoryStore {
	return &RedisHistoryStore{client: client}
}

func (s *RedisHistoryStore) Load(ctx context.Context, sessionID string) ([]string, error) {
	raw, err := s.client.Get(ctx, s.client.RecentQueriesKey(sessionID))
	if err != nil {
		if redisdb.IsNil(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.CodeDependency, err, "loading search history")
	}

	var queries []string
	if err := json.Unmarshal([]byte(raw), &queries); err != nil {
		// Corrupt history is discarded rather than breaking search.
		return nil, nil
	}
	return queries, nil
}

func (s *RedisHistoryStore) Save(ctx context.Context, sessionID string, queries []string) error {
	encoded, err := json.Marshal(queries)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "encoding search history")
	}
	if err := s.client.Set(ctx, s.client.RecentQueriesKey(sessionID), string(encoded), 0); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "saving search history")
	}
	return nil
}

func (s *RedisHistoryStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.RecentQueriesKey(sessionID)); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "clearing search history")
	}
	return nil
}

// MemoryHistoryStore is the in-process fallback used in tests and when Redis
// is not configured.
type MemoryHistoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]string
}

func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{sessions: make(map[string][]string)}
}

func (s *MemoryHistoryStore) Load(ctx context.Context, sessionID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	queries := s.sessions[sessionID]
	out := make([]string, len(queries))
	copy(out, queries)
	return out, nil
}

func (s *MemoryHistoryStore) Save(ctx context.Context, sessionID string, queries []string) error {
	stored := make([]string, len(queries))
	copy(stored, queries)
	s.mu.Lock()
	s.sessions[sessionID] = stored
	s.mu.Unlock()
	return nil
}

func (s *MemoryHistoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}
