package hub_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/hub"
	"github.com/MrJamesThe3rd/stash/internal/session"
)

func newServer(t *testing.T, repo *hub.MockRepository) (http.Handler, *session.Manager) {
	t.Helper()

	sessions := session.NewManager("test-secret", time.Hour)
	handler := hub.NewHandler(hub.NewService(repo), sessions)

	return hub.NewRouter(handler), sessions
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Inbox(t *testing.T) {
	t.Run("DepositPush", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hub.NewMockRepository(ctrl)
		repo.EXPECT().EnqueueDeposit(gomock.Any(), testKey, gomock.Any()).Return(nil)

		router, _ := newServer(t, repo)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/inbox",
			`{"letter":"J","code":"4821","amountCAD":"120.50","source":"trader"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"queued":true}`, rec.Body.String())
	})

	t.Run("RejectsMissingCredentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newServer(t, hub.NewMockRepository(ctrl))
		rec := doJSON(t, router, http.MethodPost, "/api/v1/inbox", `{"amountCAD":"5"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("RejectsZeroAmounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newServer(t, hub.NewMockRepository(ctrl))
		rec := doJSON(t, router, http.MethodPost, "/api/v1/inbox",
			`{"letter":"J","code":"4821","amountCAD":"0","amountUSD":"0"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("DrainReturnsEmptyArrayNotNull", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hub.NewMockRepository(ctrl)
		repo.EXPECT().DrainDeposits(gomock.Any(), testKey).Return(nil, nil)
		repo.EXPECT().LatestAccountSync(gomock.Any(), testKey).Return(nil, nil)
		repo.EXPECT().LatestAppSnapshot(gomock.Any(), testKey).Return(nil, nil)

		router, _ := newServer(t, repo)
		rec := doJSON(t, router, http.MethodGet, "/api/v1/inbox?letter=J&code=4821", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deposits":[],"count":0,"accountSync":null,"appData":null}`, rec.Body.String())
	})

	t.Run("DrainRejectsBadCredentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newServer(t, hub.NewMockRepository(ctrl))
		rec := doJSON(t, router, http.MethodGet, "/api/v1/inbox?letter=JJ&code=1", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Ledgers(t *testing.T) {
	t.Run("GetMissingReturnsNull", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hub.NewMockRepository(ctrl)
		repo.EXPECT().GetLedger(gomock.Any(), testKey, "goals").Return(nil, false, nil)

		router, _ := newServer(t, repo)
		rec := doJSON(t, router, http.MethodGet, "/api/v1/ledgers/goals?letter=J&code=4821", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"goals":null}`, rec.Body.String())
	})

	t.Run("GetPopulated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hub.NewMockRepository(ctrl)
		repo.EXPECT().GetLedger(gomock.Any(), testKey, "goals").Return([]byte(`[{"Title":"Car"}]`), true, nil)

		router, _ := newServer(t, repo)
		rec := doJSON(t, router, http.MethodGet, "/api/v1/ledgers/goals?letter=J&code=4821", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"goals":[{"Title":"Car"}]}`, rec.Body.String())
	})

	t.Run("GetStoreDownIs503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hub.NewMockRepository(ctrl)
		repo.EXPECT().GetLedger(gomock.Any(), testKey, "goals").Return(nil, false, errors.New("down"))

		router, _ := newServer(t, repo)
		rec := doJSON(t, router, http.MethodGet, "/api/v1/ledgers/goals?letter=J&code=4821", "", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hub.NewMockRepository(ctrl)
		repo.EXPECT().PutLedger(gomock.Any(), testKey, "goals", gomock.Any()).Return(nil)

		router, _ := newServer(t, repo)
		rec := doJSON(t, router, http.MethodPut, "/api/v1/ledgers/goals?letter=J&code=4821",
			`{"goals":[{"Title":"Car"}]}`, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("PutRejectsNonArray", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newServer(t, hub.NewMockRepository(ctrl))
		rec := doJSON(t, router, http.MethodPut, "/api/v1/ledgers/goals?letter=J&code=4821",
			`{"goals":{"Title":"Car"}}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Session(t *testing.T) {
	t.Run("LoginIssuesToken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hub.NewMockRepository(ctrl)
		repo.EXPECT().FindRoute(gomock.Any(), testKey).
			Return(&account.Route{Key: testKey, Label: "James", IsAdmin: true}, nil)

		router, _ := newServer(t, repo)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/session", `{"letter":"J","code":"4821"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token"`)
		assert.Contains(t, rec.Body.String(), `"label":"James"`)
	})

	t.Run("UnknownRouteIs401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hub.NewMockRepository(ctrl)
		repo.EXPECT().FindRoute(gomock.Any(), testKey).Return(nil, hub.ErrNotFound)

		router, _ := newServer(t, repo)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/session", `{"letter":"J","code":"4821"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_RouteAdmin(t *testing.T) {
	adminHeader := func(t *testing.T, sessions *session.Manager) http.Header {
		t.Helper()

		token, err := sessions.Issue(account.Route{Key: testKey, IsAdmin: true})
		require.NoError(t, err)

		h := http.Header{}
		h.Set("Authorization", "Bearer "+token)

		return h
	}

	t.Run("SelfRemovalIsConflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, sessions := newServer(t, hub.NewMockRepository(ctrl))
		rec := doJSON(t, router, http.MethodDelete, "/api/v1/routes/J/4821", "", adminHeader(t, sessions))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("RemovesOtherRoute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := hub.NewMockRepository(ctrl)
		repo.EXPECT().RemoveRoute(gomock.Any(), account.Key{Letter: "K", Code: "1111"}).Return(nil)

		router, sessions := newServer(t, repo)
		rec := doJSON(t, router, http.MethodDelete, "/api/v1/routes/K/1111", "", adminHeader(t, sessions))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, sessions := newServer(t, hub.NewMockRepository(ctrl))

		token, err := sessions.Issue(account.Route{Key: testKey})
		require.NoError(t, err)

		h := http.Header{}
		h.Set("Authorization", "Bearer "+token)

		rec := doJSON(t, router, http.MethodGet, "/api/v1/routes", "", h)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NoTokenUnauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newServer(t, hub.NewMockRepository(ctrl))
		rec := doJSON(t, router, http.MethodGet, "/api/v1/routes", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
