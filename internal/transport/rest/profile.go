package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/internal/service/profile"
)

type profileService interface {
	Profile() domain.UserProfile
	CompleteSetup(ctx context.Context, input profile.SetupInput) (domain.UserProfile, error)
	UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.UserProfile, error)
}

// ProfileHandler serves the user profile and its targets.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	Profile    domain.UserProfile `json:"profile"`
	NeedsSetup bool               `json:"needsSetup"`
}

func toProfileResponse(p domain.UserProfile) profileResponse {
	return profileResponse{Profile: p, NeedsSetup: !p.IsComplete()}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProfileResponse(h.svc.Profile()))
}

// Patch handles PATCH /profile.
func (h *ProfileHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProfilePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.UpdateProfile(r.Context(), patch)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Setup handles POST /profile/setup.
func (h *ProfileHandler) Setup(w http.ResponseWriter, r *http.Request) {
	var in profile.SetupInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CompleteSetup(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
