package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

type aiService interface {
	AnalyzeImage(ctx context.Context, img *domain.InlineImage) ([]domain.StagedItem, error)
	AnalyzeText(ctx context.Context, text string) ([]domain.StagedItem, error)
	PlanMeals(ctx context.Context, in domain.PlanInput) (string, error)
}

// ImageEncoder turns an uploaded file into inline image data. It must close
// r when r is an io.Closer.
type ImageEncoder func(r io.Reader, mimeType string) (*domain.InlineImage, error)

// AIHandler serves food recognition and meal planning.
type AIHandler struct {
	svc       aiService
	encode    ImageEncoder
	maxUpload int64
	log       *slog.Logger
}

// NewAIHandler creates an AIHandler. Multipart uploads larger than
// maxUpload bytes are rejected.
func NewAIHandler(svc aiService, encode ImageEncoder, maxUpload int64, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		svc:       svc,
		encode:    encode,
		maxUpload: maxUpload,
		log:       logger.With("handler", "ai"),
	}
}

type analyzeTextRequest struct {
	Description string `json:"description"`
}

type planResponse struct {
	Plan string `json:"plan"`
}

// AnalyzeImage handles POST /analyze/image with a multipart "image" field.
func (h *AIHandler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", "image is too large")
			return
		}
		handleError(w, r, h.log, domain.NewValidationError("image", "multipart form required"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("image")
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("image", "required"))
		return
	}

	img, err := h.encode(file, header.Header.Get("Content-Type"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.AnalyzeImage(r.Context(), img)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse[domain.StagedItem]{Items: items})
}

// AnalyzeText handles POST /analyze/text.
func (h *AIHandler) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req analyzeTextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.AnalyzeText(r.Context(), req.Description)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, itemsResponse[domain.StagedItem]{Items: items})
}

// Plan handles POST /plan.
func (h *AIHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var in domain.PlanInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	plan, err := h.svc.PlanMeals(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, planResponse{Plan: plan})
}
