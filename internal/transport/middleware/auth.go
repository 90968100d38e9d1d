package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/pkg/ctxutil"
)

// sessionGate is the part of the auth gatekeeper the middleware needs.
type sessionGate interface {
	Authorized(ctx context.Context) bool
	Session() *domain.Session
}

// RequireSession rejects requests while the gatekeeper is not authorized.
// Authorized requests carry the user ID in their context.
func RequireSession(gate sessionGate) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Authorized(r.Context()) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
					"error": "no active session",
					"code":  "unauthorized",
				})
				return
			}

			ctx := r.Context()
			if sess := gate.Session(); sess != nil {
				ctx = ctxutil.WithUserID(ctx, sess.UserID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
