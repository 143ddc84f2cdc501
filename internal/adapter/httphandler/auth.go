package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// POST /v1/auth/login     JSON {email, password}       (200 OK, 401)
// POST /v1/auth/register  JSON {email, password, name} (201 Created)
// GET  /v1/auth/verify    Authorization: Bearer        (200 OK, 401)

type AuthHandler struct {
	auth port.Authenticator
}

func RegisterAuth(mux *http.ServeMux, auth port.Authenticator) {
	h := AuthHandler{auth}
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("POST /v1/auth/register", h.Register)
	mux.HandleFunc("GET /v1/auth/verify", h.Verify)
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Login"
	log := slog.With("op", op)

	var req LoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	s, err := h.auth.Login(r.Context(), domain.Credentials(req))
	if err != nil {
		respondErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthSession{Token: s.Token, User: toUser(s.User)})
}

func (h AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Register"
	log := slog.With("op", op)

	var req RegisterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	u, err := h.auth.Register(r.Context(), domain.Registration(req))
	if err != nil {
		respondErr(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUser(u))
	log.Info("user registered", "email", u.Email)
}

func (h AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Verify"
	log := slog.With("op", op)

	u, err := h.auth.Verify(r.Context(), bearerToken(r))
	if err != nil {
		respondErr(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}
