package search

import (
	"context"

	"github.com/drevmart/drevmart-backend/internal/catalog"
	"github.com/drevmart/drevmart-backend/pkg/logger"
)

// Service answers suggestion queries and tracks per-session history.
type Service struct {
	store   catalog.Store
	history *History
	logg    *logger.Logger
}

func NewService(store catalog.Store, history *History, logg *logger.Logger) *Service {
	return &Service{store: store, history: history, logg: logg}
}

// Suggest matches the query against product names and applies the dropdown
// display cap.
func (s *Service) Suggest(ctx context.Context, query string) ([]Item, error) {
	if query == "" {
		return []Item{}, nil
	}

	list, err := s.store.ListProducts(ctx, catalog.ListParams{PageSize: catalog.MaxPageSize})
	if err != nil {
		return nil, err
	}

	matched := Truncate(Suggest(FromProducts(list.Data), query))
	s.logg.Debug(s.logg.WithFields(s.logg.WithQuery(ctx, query), map[string]any{
		"matched": len(matched),
	}), "suggestions computed")
	return matched, nil
}

// Recent returns the session's history, most recent first.
func (s *Service) Recent(ctx context.Context, sessionID string) ([]string, error) {
	return s.history.Recent(ctx, sessionID)
}

// CommitQuery records a performed search and returns the updated history.
func (s *Service) CommitQuery(ctx context.Context, sessionID, query string) ([]string, error) {
	return s.history.Commit(s.logg.WithQuery(ctx, query), sessionID, query)
}

// ClearHistory forgets everything the session searched for.
func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	return s.history.Clear(ctx, sessionID)
}
