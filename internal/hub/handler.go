package hub

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/session"
)

type Handler struct {
	svc      *Service
	sessions *session.Manager
}

func NewHandler(svc *Service, sessions *session.Manager) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/inbox", h.push)
	r.Get("/inbox", h.drain)

	r.Get("/ledgers/{ledger}", h.getLedger)
	r.Put("/ledgers/{ledger}", h.putLedger)

	r.Post("/session", h.login)

	r.Group(func(r chi.Router) {
		r.Use(h.sessions.Middleware, session.AdminOnly)
		r.Get("/routes", h.listRoutes)
		r.Post("/routes", h.addRoute)
		r.Delete("/routes/{letter}/{code}", h.removeRoute)
	})
}

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	var req PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Push(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) drain(w http.ResponseWriter, r *http.Request) {
	key, err := account.ParseKey(r.URL.Query().Get("letter"), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.svc.Drain(r.Context(), key)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if resp.Deposits == nil {
		resp.Deposits = []InboxDeposit{}
	}

	writeJSON(w, http.StatusOK, resp)
}

// getLedger responds with the document under the ledger's own name, e.g.
// {"goals": [...]} or {"goals": null} when the slot was never written.
func (h *Handler) getLedger(w http.ResponseWriter, r *http.Request) {
	ledger := chi.URLParam(r, "ledger")

	key, err := account.ParseKey(r.URL.Query().Get("letter"), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, ok, err := h.svc.GetLedger(r.Context(), key, ledger)
	if err != nil {
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	if !ok {
		data = []byte("null")
	}

	writeJSON(w, http.StatusOK, map[string]json.RawMessage{ledger: data})
}

// putLedger overwrites the document wholesale. The body must be
// {"<ledger>": [...]} with an actual array under the key.
func (h *Handler) putLedger(w http.ResponseWriter, r *http.Request) {
	ledger := chi.URLParam(r, "ledger")

	key, err := account.ParseKey(r.URL.Query().Get("letter"), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, ok := body[ledger]
	if !ok {
		http.Error(w, "missing ledger payload", http.StatusBadRequest)
		return
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		http.Error(w, "ledger payload must be an array", http.StatusBadRequest)
		return
	}

	if err := h.svc.PutLedger(r.Context(), key, ledger, data); err != nil {
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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

	route, err := h.svc.Authenticate(r.Context(), req.Letter, req.Code)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
			http.Error(w, "unknown letter or code", http.StatusUnauthorized)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	token, err := h.sessions.Issue(*route)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Label: route.Label, IsAdmin: route.IsAdmin})
}

type routeResponse struct {
	Letter  string `json:"letter"`
	Code    string `json:"code"`
	Label   string `json:"label"`
	IsAdmin bool   `json:"isAdmin"`
}

func (h *Handler) listRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.svc.Routes(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]routeResponse, len(routes))
	for i, rt := range routes {
		resp[i] = routeResponse{Letter: rt.Letter, Code: rt.Code, Label: rt.Label, IsAdmin: rt.IsAdmin}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) addRoute(w http.ResponseWriter, r *http.Request) {
	var req routeResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	route := account.Route{
		Key:     account.Key{Letter: req.Letter, Code: req.Code},
		Label:   req.Label,
		IsAdmin: req.IsAdmin,
	}

	if err := h.svc.AddRoute(r.Context(), route); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) removeRoute(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.FromContext(r.Context())

	target, err := account.ParseKey(chi.URLParam(r, "letter"), chi.URLParam(r, "code"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveRoute(r.Context(), actor.Key, target); err != nil {
		switch {
		case errors.Is(err, ErrSelfRemoval):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "route not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
