package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
	"github.com/heartmarshall/nutrigym-backend/internal/service/tracker"
)

// dayService is the journal surface of the tracker.
type dayService interface {
	Location() *time.Location
	Today() time.Time
	SelectDate(date time.Time) time.Time
	Day() tracker.DayView
	AddFoods(ctx context.Context, slot domain.MealSlot, inputs []domain.FoodInput) ([]domain.FoodItem, error)
	AddManual(ctx context.Context, slot domain.MealSlot, entry tracker.ManualEntry) (domain.FoodItem, error)
	UpdateFood(ctx context.Context, slot domain.MealSlot, item domain.FoodItem) (bool, error)
	DeleteFood(ctx context.Context, slot domain.MealSlot, id string) (bool, error)
}

// DayHandler serves the selected day and its food items.
type DayHandler struct {
	svc dayService
	log *slog.Logger
}

// NewDayHandler creates a DayHandler.
func NewDayHandler(svc dayService, logger *slog.Logger) *DayHandler {
	return &DayHandler{svc: svc, log: logger.With("handler", "day")}
}

type selectDayRequest struct {
	Date string `json:"date"`
}

type addItemsRequest struct {
	Items []domain.FoodInput `json:"items"`
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

// Get handles GET /day.
func (h *DayHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Day())
}

// Select handles PUT /day. An empty date or "today" selects today.
func (h *DayHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectDayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	date := h.svc.Today()
	if key := strings.TrimSpace(req.Date); key != "" && !strings.EqualFold(key, "today") {
		parsed, err := domain.ParseDateKey(key, h.svc.Location())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		date = parsed
	}

	h.svc.SelectDate(date)
	writeJSON(w, http.StatusOK, h.svc.Day())
}

// AddItems handles POST /day/{slot}/items.
func (h *DayHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	slot, err := mealSlot(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req addItemsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if len(req.Items) == 0 {
		handleError(w, r, h.log, domain.NewValidationError("items", "required"))
		return
	}

	items, err := h.svc.AddFoods(r.Context(), slot, req.Items)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, itemsResponse[domain.FoodItem]{Items: items})
}

// AddManual handles POST /day/{slot}/manual.
func (h *DayHandler) AddManual(w http.ResponseWriter, r *http.Request) {
	slot, err := mealSlot(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var entry tracker.ManualEntry
	if err := decodeJSON(w, r, &entry); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.svc.AddManual(r.Context(), slot, entry)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /day/{slot}/items/{id}. An unknown id is a no-op.
func (h *DayHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	slot, err := mealSlot(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var in domain.FoodInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item := domain.FoodItem{ID: r.PathValue("id"), FoodInput: in}
	ok, err := h.svc.UpdateFood(r.Context(), slot, item)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !ok {
		h.log.DebugContext(r.Context(), "update of unknown item ignored", slog.String("id", item.ID))
	}
	writeJSON(w, http.StatusOK, h.svc.Day())
}

// DeleteItem handles DELETE /day/{slot}/items/{id}. An unknown id is a no-op.
func (h *DayHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	slot, err := mealSlot(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ok, err := h.svc.DeleteFood(r.Context(), slot, r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !ok {
		h.log.DebugContext(r.Context(), "delete of unknown item ignored", slog.String("id", r.PathValue("id")))
	}
	w.WriteHeader(http.StatusNoContent)
}
