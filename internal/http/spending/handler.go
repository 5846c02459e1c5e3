package spending

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/session"
	"github.com/MrJamesThe3rd/stash/internal/spending"
)

type Handler struct {
	svc    *spending.Service
	notify func()
}

func NewHandler(svc *spending.Service, notify func()) *Handler {
	if notify == nil {
		notify = func() {}
	}

	return &Handler{svc: svc, notify: notify}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.remove)
}

func accountKey(r *http.Request) (account.Key, bool) {
	route, ok := session.FromContext(r.Context())
	if !ok {
		return account.Key{}, false
	}

	return route.Key, true
}

type entryResponse struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Category string          `json:"category,omitempty"`
}

func toResponse(e spending.Entry) entryResponse {
	return entryResponse{
		ID:       e.ID,
		Title:    e.Title,
		Amount:   e.Amount,
		Date:     e.Date,
		Category: e.Category,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	entries, err := h.svc.List(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	writeJSON(w, http.StatusOK, resp)
}

type createEntryRequest struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Category string          `json:"category"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Add(r.Context(), key, spending.AddParams{
		Title:    req.Title,
		Amount:   req.Amount,
		Date:     req.Date,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, spending.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.notify()
	writeJSON(w, http.StatusCreated, toResponse(*entry))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	if err := h.svc.Remove(r.Context(), key, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, spending.ErrNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notify()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
