// Package ai is the generative-AI adapter: dish recognition from an image or
// a description, and free-form meal plans. Concrete backends live in the
// gemini and anthropic packages.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/heartmarshall/nutrigym-backend/internal/config"
	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// Backend is one generative model API.
type Backend interface {
	// Recognize sends prompt, and image when non-nil, asking for a JSON
	// array of dishes. It returns the model's raw text.
	Recognize(ctx context.Context, prompt string, image *domain.InlineImage) (string, error)
	// Generate returns free text for prompt.
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Client is the AI adapter used by the tracker.
type Client struct {
	log         *slog.Logger
	lazy        *Lazy
	lang        language.Tag
	temperature float64
}

// NewClient creates an adapter whose backend is built on first use.
func NewClient(logger *slog.Logger, lazy *Lazy, cfg config.AIConfig) *Client {
	return &Client{
		log:         logger.With("adapter", "ai"),
		lazy:        lazy,
		lang:        cfg.LanguageTag(),
		temperature: cfg.PlanTemperature,
	}
}

// Language returns the display language used in prompts.
func (c *Client) Language() language.Tag {
	return c.lang
}

// Recognize decomposes the input into dishes with estimated macros.
func (c *Client) Recognize(ctx context.Context, in domain.RecognizeInput) ([]domain.AnalyzedDish, error) {
	var prompt string
	desc := strings.TrimSpace(in.Description)
	switch {
	case in.Image != nil:
		if err := in.Image.Validate(); err != nil {
			return nil, fmt.Errorf("ai.Recognize: %w", err)
		}
		prompt = RecognizeImagePrompt(c.lang)
	case desc != "":
		prompt = RecognizeTextPrompt(c.lang, desc)
	default:
		return nil, domain.NewValidationError("description", "required")
	}

	backend, err := c.lazy.Get(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := backend.Recognize(ctx, prompt, in.Image)
	if err != nil {
		c.log.ErrorContext(ctx, "recognize failed",
			slog.Bool("image", in.Image != nil),
			slog.String("error", err.Error()))
		return nil, c.fail("Recognize", domain.MsgAnalyze, err)
	}

	dishes, err := Decode(raw)
	if err != nil {
		c.log.ErrorContext(ctx, "recognize response unusable", slog.String("error", err.Error()))
		return nil, c.fail("Recognize", domain.MsgAnalyze, err)
	}

	c.log.InfoContext(ctx, "recognized",
		slog.Bool("image", in.Image != nil),
		slog.Int("dishes", len(dishes)),
		slog.Duration("took", time.Since(start)))
	return dishes, nil
}

// Plan builds the planner prompt for the profile's targets and returns the
// markdown plan.
func (c *Client) Plan(ctx context.Context, profile domain.UserProfile, in domain.PlanInput) (string, error) {
	return c.PlanMeals(ctx, PlanPrompt(c.lang, profile, in))
}

// PlanMeals returns a markdown meal plan for prompt.
func (c *Client) PlanMeals(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.NewValidationError("prompt", "required")
	}

	backend, err := c.lazy.Get(ctx)
	if err != nil {
		return "", err
	}

	text, err := backend.Generate(ctx, prompt, c.temperature)
	if err != nil {
		c.log.ErrorContext(ctx, "plan failed", slog.String("error", err.Error()))
		return "", c.fail("PlanMeals", domain.MsgPlan, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", c.fail("PlanMeals", domain.MsgPlan, errors.New("empty response"))
	}
	return text, nil
}

func (c *Client) fail(op, message string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("ai.%s: %w", op, err)
	case errors.Is(err, domain.ErrCredential):
		return &domain.ProviderError{
			Op:      "ai." + op,
			Kind:    domain.ErrCredential,
			Message: domain.MsgCredential,
			Err:     err,
		}
	}
	return &domain.ProviderError{
		Op:      "ai." + op,
		Kind:    domain.ErrTransient,
		Message: message,
		Err:     err,
	}
}

// IsCredentialMessage reports whether a provider error text points at a
// missing or rejected API key.
func IsCredentialMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "api key") ||
		strings.Contains(lower, "api_key") ||
		strings.Contains(lower, "permission")
}
