package goals

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/goal"
	"github.com/MrJamesThe3rd/stash/internal/session"
	"github.com/MrJamesThe3rd/stash/internal/unallocated"
)

type Handler struct {
	svc    *goal.Service
	queue  *unallocated.Service
	notify func()
}

func NewHandler(svc *goal.Service, queue *unallocated.Service, notify func()) *Handler {
	if notify == nil {
		notify = func() {}
	}

	return &Handler{svc: svc, queue: queue, notify: notify}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.remove)
	r.Post("/reorder", h.reorder)
	r.Post("/funds", h.addFunds)
	r.Post("/allocate", h.allocate)
	r.Get("/deposits", h.deposits)
	r.Post("/{id}/funds", h.addFundsToGoal)
	r.Post("/{id}/side-goals", h.addSideGoal)
	r.Delete("/{id}/side-goals/{sideID}", h.removeSideGoal)
	r.Post("/{id}/side-goals/{sideID}/funds", h.addFundsToSideGoal)
	r.Post("/{id}/side-goals/{sideID}/sub-goals", h.addSubSideGoal)
}

func accountKey(r *http.Request) (account.Key, bool) {
	route, ok := session.FromContext(r.Context())
	if !ok {
		return account.Key{}, false
	}

	return route.Key, true
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	goals, err := h.svc.List(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(goals))
}

type createGoalRequest struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.Add(r.Context(), key, req.Title, req.TargetAmount)
	if err != nil {
		if errors.Is(err, goal.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.notify()
	writeJSON(w, http.StatusCreated, toResponse(*g))
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
		if errors.Is(err, goal.ErrNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.notify()
	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	OrderedIDs []uuid.UUID `json:"orderedIds"`
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Reorder(r.Context(), key, req.OrderedIDs); err != nil {
		if errors.Is(err, goal.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.notify()
	w.WriteHeader(http.StatusNoContent)
}

type addFundsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) addFunds(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req addFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dist, err := h.svc.AddFunds(r.Context(), key, req.Amount)
	if err != nil {
		if errors.Is(err, goal.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.notify()
	writeJSON(w, http.StatusOK, toDistributionResponse(dist))
}

// allocateRequest routes unallocated money to a destination. GoalID empty
// means the waterfall; SideGoalID set addresses a side goal under GoalID.
type allocateRequest struct {
	DepositID  uuid.UUID       `json:"depositId"`
	Amount     decimal.Decimal `json:"amount"`
	GoalID     *uuid.UUID      `json:"goalId,omitempty"`
	SideGoalID *uuid.UUID      `json:"sideGoalId,omitempty"`
}

// allocate applies funds to the destination, then drains the queued deposit.
// The two writes are sequential, not transactional: a crash in between leaves
// the money counted twice until the deposit is dismissed by hand.
func (h *Handler) allocate(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req allocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var err error

	switch {
	case req.GoalID == nil:
		_, err = h.svc.AddFunds(r.Context(), key, req.Amount)
	case req.SideGoalID != nil:
		err = h.svc.AddFundsToSideGoal(r.Context(), key, *req.GoalID, *req.SideGoalID, req.Amount)
	default:
		err = h.svc.AddFundsToGoal(r.Context(), key, *req.GoalID, req.Amount)
	}

	if err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, goal.ErrInvalidInput):
			status = http.StatusBadRequest
		case errors.Is(err, goal.ErrNotFound):
			status = http.StatusNotFound
		}

		http.Error(w, err.Error(), status)

		return
	}

	if err := h.queue.Allocate(r.Context(), key, req.DepositID, req.Amount); err != nil {
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

func (h *Handler) deposits(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	deposits, err := h.svc.Deposits(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toDepositResponseList(deposits))
}

func (h *Handler) addFundsToGoal(w http.ResponseWriter, r *http.Request) {
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

	var req addFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AddFundsToGoal(r.Context(), key, id, req.Amount); err != nil {
		if errors.Is(err, goal.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.notify()
	w.WriteHeader(http.StatusNoContent)
}

type addSideGoalRequest struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
}

func (h *Handler) addSideGoal(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	parentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addSideGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sg, err := h.svc.AddSideGoal(r.Context(), key, parentID, req.Title, req.TargetAmount)
	if err != nil {
		h.sideGoalError(w, err)
		return
	}

	h.notify()
	writeJSON(w, http.StatusCreated, toSideGoalResponse(*sg))
}

func (h *Handler) addSubSideGoal(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	parentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	sideID, err := uuid.Parse(chi.URLParam(r, "sideID"))
	if err != nil {
		http.Error(w, "invalid side goal id", http.StatusBadRequest)
		return
	}

	var req addSideGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sg, err := h.svc.AddSubSideGoal(r.Context(), key, parentID, sideID, req.Title, req.TargetAmount)
	if err != nil {
		h.sideGoalError(w, err)
		return
	}

	h.notify()
	writeJSON(w, http.StatusCreated, toSideGoalResponse(*sg))
}

func (h *Handler) removeSideGoal(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	parentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	sideID, err := uuid.Parse(chi.URLParam(r, "sideID"))
	if err != nil {
		http.Error(w, "invalid side goal id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveSideGoal(r.Context(), key, parentID, sideID); err != nil {
		h.sideGoalError(w, err)
		return
	}

	h.notify()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addFundsToSideGoal(w http.ResponseWriter, r *http.Request) {
	key, ok := accountKey(r)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	parentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	sideID, err := uuid.Parse(chi.URLParam(r, "sideID"))
	if err != nil {
		http.Error(w, "invalid side goal id", http.StatusBadRequest)
		return
	}

	var req addFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AddFundsToSideGoal(r.Context(), key, parentID, sideID, req.Amount); err != nil {
		h.sideGoalError(w, err)
		return
	}

	h.notify()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sideGoalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, goal.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, goal.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
