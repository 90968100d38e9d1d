package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/internal/service/staging"
)

type stagingService interface {
	Staged() []domain.StagedItem
	SetStagedGrams(id string, grams float64) (domain.StagedItem, error)
	EditStaged(id string, patch staging.FoodPatch) (domain.StagedItem, error)
	AddBlankStaged() domain.StagedItem
	RemoveStaged(id string) bool
	CommitStaged(ctx context.Context, slot domain.MealSlot) ([]domain.FoodItem, error)
	DiscardStaged()
}

// StagingHandler serves the review list that sits between an analysis and
// the journal.
type StagingHandler struct {
	svc stagingService
	log *slog.Logger
}

// NewStagingHandler creates a StagingHandler.
func NewStagingHandler(svc stagingService, logger *slog.Logger) *StagingHandler {
	return &StagingHandler{svc: svc, log: logger.With("handler", "staging")}
}

type gramsRequest struct {
	Grams *float64 `json:"grams"`
}

type commitRequest struct {
	Slot domain.MealSlot `json:"slot"`
}

// List handles GET /staging.
func (h *StagingHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, itemsResponse[domain.StagedItem]{Items: h.svc.Staged()})
}

// Edit handles PATCH /staging/{id}.
func (h *StagingHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var patch staging.FoodPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.EditStaged(r.PathValue("id"), patch)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// SetGrams handles PUT /staging/{id}/grams.
func (h *StagingHandler) SetGrams(w http.ResponseWriter, r *http.Request) {
	var req gramsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if req.Grams == nil {
		handleError(w, r, h.log, domain.NewValidationError("grams", "required"))
		return
	}

	item, err := h.svc.SetStagedGrams(r.PathValue("id"), *req.Grams)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// AddBlank handles POST /staging/blank.
func (h *StagingHandler) AddBlank(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.svc.AddBlankStaged())
}

// Remove handles DELETE /staging/{id}.
func (h *StagingHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if !h.svc.RemoveStaged(r.PathValue("id")) {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Commit handles POST /staging/commit.
func (h *StagingHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.CommitStaged(r.Context(), req.Slot)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, itemsResponse[domain.FoodItem]{Items: items})
}

// Discard handles DELETE /staging.
func (h *StagingHandler) Discard(w http.ResponseWriter, r *http.Request) {
	h.svc.DiscardStaged()
	w.WriteHeader(http.StatusNoContent)
}
