package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	sessionHeader = "X-Session-Id"
	sessionCookie = "drevmart_session"
)

// Session resolves the anonymous storefront session used for carts and
// search history: header first, then cookie, otherwise a fresh id that is
// handed back via both.
func Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionHeader)
			if sessionID == "" {
				if cookie, err := r.Cookie(sessionCookie); err == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			w.Header().Set(sessionHeader, sessionID)
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
		})
	}
}
