package controllers

import (
	"net/http"

	"github.com/drevmart/drevmart-backend/api/middleware"
	"github.com/drevmart/drevmart-backend/api/responses"
	"github.com/drevmart/drevmart-backend/api/validators"
	"github.com/drevmart/drevmart-backend/internal/search"
	"github.com/drevmart/drevmart-backend/pkg/logger"
)

// Suggest serves typeahead results for the search box.
func Suggest(svc *search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := validators.SanitizeString(r.URL.Query().Get("q"), 200)

		items, err := svc.Suggest(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"items":       items,
			"popularTags": search.PopularTags,
		})
	}
}

// RecentQueries returns the session's search history, most recent first.
func RecentQueries(svc *search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		queries, err := svc.Recent(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, queries)
	}
}

type commitQueryRequest struct {
	Query string `json:"query" validate:"required,max=200"`
}

// CommitQuery records a performed search in the session history.
func CommitQuery(svc *search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload commitQueryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		queries, err := svc.CommitQuery(r.Context(), sessionID, payload.Query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, queries)
	}
}

// ClearRecentQueries wipes the session's search history.
func ClearRecentQueries(svc *search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if err := svc.ClearHistory(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, []string{})
	}
}
