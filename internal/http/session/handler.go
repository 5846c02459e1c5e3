package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/stash/internal/remote"
)

// Authenticator relays a letter/code pair to whoever owns the directory.
type Authenticator interface {
	Login(ctx context.Context, letter, code string) (*remote.LoginResult, error)
}

type Handler struct {
	auth Authenticator
}

func NewHandler(auth Authenticator) *Handler {
	return &Handler{auth: auth}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.login)
}

type loginRequest struct {
	Letter string `json:"letter"`
	Code   string `json:"code"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Label   string `json:"label"`
	IsAdmin bool   `json:"isAdmin"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.auth.Login(r.Context(), req.Letter, req.Code)
	if err != nil {
		if errors.Is(err, remote.ErrUnauthorized) {
			http.Error(w, "unknown letter or code", http.StatusUnauthorized)
			return
		}

		http.Error(w, "login unavailable", http.StatusServiceUnavailable)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(loginResponse(*result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
