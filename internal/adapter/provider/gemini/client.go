// Package gemini is the Google Gemini backend of the AI adapter.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/heartmarshall/nutrigym-backend/internal/adapter/provider/ai"
	"github.com/heartmarshall/nutrigym-backend/internal/config"
	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// Client calls Models.GenerateContent.
type Client struct {
	client    *genai.Client
	model     string
	maxTokens int32
	log       *slog.Logger
}

// New creates a Gemini client. A blank API key is a credential error.
func New(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini.New: api key: %w", domain.ErrCredential)
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini.New: %w", classify(err))
	}

	log := logger.With("adapter", "gemini")
	log.Info("gemini client ready", slog.String("model", cfg.ModelOrDefault()))

	return &Client{
		client:    client,
		model:     cfg.ModelOrDefault(),
		maxTokens: int32(cfg.MaxTokens),
		log:       log,
	}, nil
}

// Factory adapts New to ai.Factory.
func Factory(cfg config.AIConfig, logger *slog.Logger) ai.Factory {
	return func(ctx context.Context) (ai.Backend, error) {
		c, err := New(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Recognize asks for dishes as JSON constrained by the dish schema.
func (c *Client) Recognize(ctx context.Context, prompt string, image *domain.InlineImage) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if image != nil {
		data, err := image.Bytes()
		if err != nil {
			return "", fmt.Errorf("gemini.Recognize: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, image.MIMEType))
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   dishSchema(),
			MaxOutputTokens:  c.maxTokens,
		})
	if err != nil {
		return "", fmt.Errorf("gemini.Recognize: %w", classify(err))
	}
	return resp.Text(), nil
}

// Generate returns free text at the given temperature.
func (c *Client) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(temperature)),
			MaxOutputTokens: c.maxTokens,
		})
	if err != nil {
		return "", fmt.Errorf("gemini.Generate: %w", classify(err))
	}
	return resp.Text(), nil
}

// dishSchema is the response schema for an array of AnalyzedDish.
func dishSchema() *genai.Schema {
	num := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeNumber, Description: desc}
	}
	food := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":     {Type: genai.TypeString, Description: "Nombre del ingrediente"},
			"calories": num("Calorías estimadas"),
			"protein":  num("Proteínas estimadas en gramos"),
			"carbs":    num("Carbohidratos estimados en gramos"),
			"fat":      num("Grasas estimadas en gramos"),
			"grams":    num("Peso estimado en gramos"),
		},
		Required:         []string{"name", "calories", "protein", "carbs", "fat", "grams"},
		PropertyOrdering: []string{"name", "calories", "protein", "carbs", "fat", "grams"},
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"dishName":    {Type: genai.TypeString, Description: "Nombre del plato"},
				"ingredients": {Type: genai.TypeArray, Items: food},
			},
			Required:         []string{"dishName", "ingredients"},
			PropertyOrdering: []string{"dishName", "ingredients"},
		},
	}
}

// classify marks key and permission failures with domain.ErrCredential.
// The API reports them as 401/403 with UNAUTHENTICATED or PERMISSION_DENIED,
// or as 400 INVALID_ARGUMENT mentioning the key.
func classify(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "UNAUTHENTICATED") || strings.Contains(msg, "PERMISSION_DENIED") ||
		ai.IsCredentialMessage(msg) {
		return fmt.Errorf("%w: %w", domain.ErrCredential, err)
	}
	return err
}
