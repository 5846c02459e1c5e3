package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/hub"
	"github.com/MrJamesThe3rd/stash/internal/remote"
)

var testKey = account.Key{Letter: "J", Code: "4821"}

func TestClient_Drain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/inbox", r.URL.Path)
		assert.Equal(t, "J", r.URL.Query().Get("letter"))
		assert.Equal(t, "4821", r.URL.Query().Get("code"))

		_ = json.NewEncoder(w).Encode(hub.DrainResponse{
			Deposits: []hub.InboxDeposit{{AmountCAD: decimal.RequireFromString("12.50"), Source: "questrade"}},
			Count:    1,
		})
	}))
	defer srv.Close()

	client := remote.NewClient(srv.URL)

	resp, err := client.Drain(context.Background(), testKey)
	require.NoError(t, err)
	require.Len(t, resp.Deposits, 1)
	assert.Equal(t, "questrade", resp.Deposits[0].Source)
}

func TestClient_PushSnapshot_CarriesSentinelNote(t *testing.T) {
	var got hub.PushRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	client := remote.NewClient(srv.URL)

	err := client.PushSnapshot(context.Background(), testKey, hub.WebsiteSnapshot{
		Goals: []hub.WebsiteGoal{{Title: "vacation", TargetAmount: decimal.RequireFromString("2000")}},
	})
	require.NoError(t, err)

	assert.Equal(t, hub.KindWebsiteSnapshot, got.Kind())
	assert.Equal(t, "J", got.Letter)
	require.NotNil(t, got.WebsiteData)
	assert.Equal(t, "vacation", got.WebsiteData.Goals[0].Title)
}

func TestClient_Load(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantOK   bool
		wantData string
		wantErr  bool
	}{
		{
			name:     "document present",
			status:   http.StatusOK,
			body:     `{"goals": [{"title": "tfsa"}]}`,
			wantOK:   true,
			wantData: `[{"title": "tfsa"}]`,
		},
		{
			name:   "document null",
			status: http.StatusOK,
			body:   `{"goals": null}`,
			wantOK: false,
		},
		{
			name:   "key missing entirely",
			status: http.StatusOK,
			body:   `{}`,
			wantOK: false,
		},
		{
			name:    "store down",
			status:  http.StatusServiceUnavailable,
			body:    `{"goals": null}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/ledgers/goals", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := remote.NewClient(srv.URL)

			data, ok, err := client.Load(context.Background(), testKey, "goals")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantData != "" {
				assert.JSONEq(t, tt.wantData, string(data))
			}
		})
	}
}

func TestClient_Save(t *testing.T) {
	var body map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/ledgers/spending", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := remote.NewClient(srv.URL)

	require.NoError(t, client.Save(context.Background(), testKey, "spending", []byte(`[{"ID":"x"}]`)))
	assert.JSONEq(t, `[{"ID":"x"}]`, string(body["spending"]))
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req["code"] != "4821" {
			http.Error(w, "unknown letter or code", http.StatusUnauthorized)
			return
		}

		_ = json.NewEncoder(w).Encode(remote.LoginResult{Token: "tok", Label: "james"})
	}))
	defer srv.Close()

	client := remote.NewClient(srv.URL)

	result, err := client.Login(context.Background(), "J", "4821")
	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)

	_, err = client.Login(context.Background(), "J", "0000")
	require.ErrorIs(t, err, remote.ErrUnauthorized)
}
