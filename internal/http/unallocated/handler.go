package unallocated

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/session"
	"github.com/MrJamesThe3rd/stash/internal/unallocated"
)

type Handler struct {
	svc    *unallocated.Service
	notify func()
}

func NewHandler(svc *unallocated.Service, notify func()) *Handler {
	if notify == nil {
		notify = func() {}
	}

	return &Handler{svc: svc, notify: notify}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Delete("/{id}", h.remove)
}

func accountKey(r *http.Request) (account.Key, bool) {
	route, ok := session.FromContext(r.Context())
	if !ok {
		return account.Key{}, false
	}

	return route.Key, true
}

type depositResponse struct {
	ID        uuid.UUID       `json:"id"`
	AmountCAD decimal.Decimal `json:"amountCAD"`
	AmountUSD decimal.Decimal `json:"amountUSD"`
	Note      string          `json:"note,omitempty"`
	Date      string          `json:"date,omitempty"`
	Source    string          `json:"source,omitempty"`
	PushedAt  time.Time       `json:"pushedAt"`
}

type listResponse struct {
	Deposits []depositResponse `json:"deposits"`
	Total    decimal.Decimal   `json:"total"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	deposits, err := h.svc.List(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	total, err := h.svc.Total(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := listResponse{
		Deposits: make([]depositResponse, len(deposits)),
		Total:    total,
	}

	for i, d := range deposits {
		resp.Deposits[i] = depositResponse{
			ID:        d.ID,
			AmountCAD: d.AmountCAD,
			AmountUSD: d.AmountUSD,
			Note:      d.Note,
			Date:      d.Date,
			Source:    d.Source,
			PushedAt:  d.PushedAt,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Remove(r.Context(), key, id); err != nil {
		if errors.Is(err, unallocated.ErrNotFound) {
			http.Error(w, "deposit not found", http.StatusNotFound)
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
