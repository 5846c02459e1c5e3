package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/MrJamesThe3rd/stash/internal/account"
)

type contextKey struct{}

// Middleware rejects requests without a valid bearer token and stashes the
// resolved route in the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		route, err := m.Verify(token)
		if err != nil {
			http.Error(w, "invalid session", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, route)))
	})
}

// AdminOnly guards directory management. Must run after Middleware.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := FromContext(r.Context())
		if !ok || !route.IsAdmin {
			http.Error(w, "admin only", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// FromContext returns the route Middleware resolved, if any.
func FromContext(ctx context.Context) (*account.Route, bool) {
	route, ok := ctx.Value(contextKey{}).(*account.Route)
	return route, ok
}
