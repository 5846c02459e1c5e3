package bills

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
	"github.com/MrJamesThe3rd/stash/internal/bill"
	"github.com/MrJamesThe3rd/stash/internal/session"
)

type Handler struct {
	svc    *bill.Service
	notify func()
}

func NewHandler(svc *bill.Service, notify func()) *Handler {
	if notify == nil {
		notify = func() {}
	}

	return &Handler{svc: svc, notify: notify}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.remove)
	r.Post("/{id}/toggle-paid", h.togglePaid)
	r.Get("/payments", h.payments)
}

func accountKey(r *http.Request) (account.Key, bool) {
	route, ok := session.FromContext(r.Context())
	if !ok {
		return account.Key{}, false
	}

	return route.Key, true
}

type billResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
	DueDay            int             `json:"dueDay"`
	Frequency         bill.Frequency  `json:"frequency"`
	Category          string          `json:"category,omitempty"`
	IsPaid            bool            `json:"isPaid"`
	LastPaidDate      *time.Time      `json:"lastPaidDate,omitempty"`
	ChargeToAccountID string          `json:"chargeToAccountId,omitempty"`
}

func toResponse(b bill.Bill) billResponse {
	return billResponse{
		ID:                b.ID,
		Name:              b.Name,
		Amount:            b.Amount,
		DueDay:            b.DueDay,
		Frequency:         b.Frequency,
		Category:          b.Category,
		IsPaid:            b.IsPaid,
		LastPaidDate:      b.LastPaidDate,
		ChargeToAccountID: b.ChargeToAccountID,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	bills, err := h.svc.List(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]billResponse, len(bills))
	for i, b := range bills {
		resp[i] = toResponse(b)
	}

	writeJSON(w, http.StatusOK, resp)
}

type createBillRequest struct {
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
	DueDay            int             `json:"dueDay"`
	Frequency         bill.Frequency  `json:"frequency"`
	Category          string          `json:"category"`
	ChargeToAccountID string          `json:"chargeToAccountId"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req createBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Add(r.Context(), key, bill.AddParams{
		Name:              req.Name,
		Amount:            req.Amount,
		DueDay:            req.DueDay,
		Frequency:         req.Frequency,
		Category:          req.Category,
		ChargeToAccountID: req.ChargeToAccountID,
	})
	if err != nil {
		if errors.Is(err, bill.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.notify()
	writeJSON(w, http.StatusCreated, toResponse(*b))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	if err := h.svc.Remove(r.Context(), key, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, bill.ErrNotFound) {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notify()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) togglePaid(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	b, err := h.svc.TogglePaid(r.Context(), key, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, bill.ErrNotFound) {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.notify()
	writeJSON(w, http.StatusOK, toResponse(*b))
}

type paymentResponse struct {
	ID       uuid.UUID       `json:"id"`
	BillName string          `json:"billName"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
}

func (h *Handler) payments(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	payments, err := h.svc.Payments(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = paymentResponse{ID: p.ID, BillName: p.BillName, Amount: p.Amount, Date: p.Date}
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
