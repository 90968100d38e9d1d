package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/internal/service/gate"
)

// gatekeeper defines the minimal interface needed by AuthHandler.
type gatekeeper interface {
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	Status() gate.Status
}

// AuthHandler serves sign-in, sign-out and the gate state.
type AuthHandler struct {
	gate gatekeeper
	log  *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(g gatekeeper, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{gate: g, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type stateResponse struct {
	State   domain.AuthState `json:"state"`
	Session *domain.Session  `json:"session,omitempty"`
	Message string           `json:"message,omitempty"`
}

func toStateResponse(st gate.Status) stateResponse {
	resp := stateResponse{State: st.State, Session: st.Session}
	if st.Err != nil && st.State != domain.AuthStateAuthorized {
		resp.Message = domain.UserMessage(st.Err)
	}
	return resp
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var errs []domain.FieldError
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if req.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	if err := h.gate.SignIn(r.Context(), strings.TrimSpace(req.Email), req.Password); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStateResponse(h.gate.Status()))
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.gate.SignOut(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStateResponse(h.gate.Status()))
}

// State handles GET /auth/state.
func (h *AuthHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toStateResponse(h.gate.Status()))
}
