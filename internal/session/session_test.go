package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/session"
)

var testRoute = account.Route{
	Key:     account.Key{Letter: "J", Code: "4821"},
	Label:   "James",
	IsAdmin: true,
}

func TestManager_RoundTrip(t *testing.T) {
	mgr := session.NewManager("test-secret", time.Hour)

	token, err := mgr.Issue(testRoute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	route, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testRoute, *route)
}

func TestManager_Verify(t *testing.T) {
	mgr := session.NewManager("test-secret", time.Hour)

	t.Run("WrongSecret", func(t *testing.T) {
		other := session.NewManager("other-secret", time.Hour)

		token, err := other.Issue(testRoute)
		require.NoError(t, err)

		_, err = mgr.Verify(token)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := session.NewManager("test-secret", -time.Minute)

		token, err := expired.Issue(testRoute)
		require.NoError(t, err)

		_, err = mgr.Verify(token)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := mgr.Verify("not-a-token")
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	mgr := session.NewManager("test-secret", time.Hour)

	handler := mgr.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := session.FromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "J", route.Letter)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("ValidToken", func(t *testing.T) {
		token, err := mgr.Issue(testRoute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("MissingToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NonAdminBlocked", func(t *testing.T) {
		user := testRoute
		user.IsAdmin = false

		token, err := mgr.Issue(user)
		require.NoError(t, err)

		guarded := mgr.Middleware(session.AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
