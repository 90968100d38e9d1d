// Package anthropic is the Claude backend of the AI adapter. The model has
// no response-schema switch, so the dish shape is enforced by the prompt and
// by ai.Decode.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/nutrigym-backend/internal/adapter/provider/ai"
	"github.com/heartmarshall/nutrigym-backend/internal/config"
	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

const jsonOnly = "\nResponde ÚNICAMENTE con el JSON, sin markdown ni explicaciones."

// Client calls the Messages API.
type Client struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	log       *slog.Logger
}

// New creates a Claude client. A blank API key is a credential error.
func New(cfg config.AIConfig, logger *slog.Logger, opts ...option.RequestOption) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("anthropic.New: api key: %w", domain.ErrCredential)
	}

	all := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		all = append(all, option.WithBaseURL(cfg.BaseURL))
	}
	all = append(all, opts...)

	log := logger.With("adapter", "anthropic")
	log.Info("anthropic client ready", slog.String("model", cfg.ModelOrDefault()))

	return &Client{
		client:    anthropic.NewClient(all...),
		model:     anthropic.Model(cfg.ModelOrDefault()),
		maxTokens: cfg.MaxTokens,
		log:       log,
	}, nil
}

// Factory adapts New to ai.Factory.
func Factory(cfg config.AIConfig, logger *slog.Logger) ai.Factory {
	return func(context.Context) (ai.Backend, error) {
		c, err := New(cfg, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Recognize sends the image as a base64 block followed by the instruction.
func (c *Client) Recognize(ctx context.Context, prompt string, image *domain.InlineImage) (string, error) {
	var blocks []anthropic.ContentBlockParamUnion
	if image != nil {
		blocks = append(blocks, anthropic.NewImageBlockBase64(image.MIMEType, image.Data))
	}
	blocks = append(blocks, anthropic.NewTextBlock(prompt+jsonOnly))

	text, err := c.send(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic.Recognize: %w", err)
	}
	return text, nil
}

// Generate returns free text at the given temperature.
func (c *Client) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	text, err := c.send(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic.Generate: %w", err)
	}
	return text, nil
}

func (c *Client) send(ctx context.Context, params anthropic.MessageNewParams) (string, error) {
	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("empty response")
	}

	c.log.DebugContext(ctx, "message done",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens))
	return b.String(), nil
}

// classify marks key and permission failures with domain.ErrCredential.
func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: %w", domain.ErrCredential, err)
		}
		return err
	}
	if ai.IsCredentialMessage(err.Error()) {
		return fmt.Errorf("%w: %w", domain.ErrCredential, err)
	}
	return err
}
