package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// maxJSONBody caps JSON request bodies. Images go through multipart.
const maxJSONBody = 1 << 20

type errorResponse struct {
	Error  string          `json:"error"`
	Code   string          `json:"code"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// handleError maps an error to its HTTP status. Provider errors carry a
// message meant for the user; internal errors are logged and hidden.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation failed", Code: "validation"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", domain.UserMessage(err))
	case errors.Is(err, domain.ErrEntitlement):
		writeError(w, http.StatusForbidden, "entitlement", domain.UserMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrSuperseded):
		writeError(w, http.StatusConflict, "superseded", "a newer request replaced this one")
	case errors.Is(err, domain.ErrCredential):
		log.WarnContext(r.Context(), "provider credentials rejected", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "credential", domain.UserMessage(err))
	case errors.Is(err, domain.ErrTransient):
		log.WarnContext(r.Context(), "provider unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "provider_unavailable", domain.UserMessage(err))
	case errors.Is(err, context.Canceled):
		log.DebugContext(r.Context(), "request canceled", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "canceled", "request canceled")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// mealSlot reads the {slot} path value.
func mealSlot(r *http.Request) (domain.MealSlot, error) {
	return domain.ParseMealSlot(r.PathValue("slot"))
}
