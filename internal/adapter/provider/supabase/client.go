// Package supabase talks to a Supabase project: GoTrue for password sessions
// and PostgREST for the profiles entitlement record.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/nutrigym-backend/internal/auth"
	"github.com/heartmarshall/nutrigym-backend/internal/config"
	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// Handler receives auth state-change notifications. session is nil for
// SIGNED_OUT.
type Handler = func(event domain.AuthEvent, session *domain.Session)

// Client is a single-user Supabase session holder.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tokens     *auth.TokenParser
	log        *slog.Logger
	now        func() time.Time
	retryDelay time.Duration

	refreshGroup singleflight.Group

	mu      sync.Mutex
	session *domain.Session
	subs    map[int]Handler
	nextSub int
}

// New creates a client from the auth config. An unconfigured client keeps
// working as a session registry but every remote call fails with a
// credential error.
func New(cfg config.AuthConfig, tokens *auth.TokenParser, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.SupabaseURL, "/"),
		apiKey:     cfg.SupabaseKey,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		tokens:     tokens,
		log:        logger.With("adapter", "supabase"),
		now:        time.Now,
		retryDelay: 500 * time.Millisecond,
		subs:       make(map[int]Handler),
	}
}

func (c *Client) configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

func (c *Client) credentialError(op string) error {
	return &domain.ProviderError{
		Op:      "supabase." + op,
		Kind:    domain.ErrCredential,
		Message: domain.MsgCredential,
	}
}

func (c *Client) unavailable(op string, err error) error {
	return &domain.ProviderError{
		Op:      "supabase." + op,
		Kind:    domain.ErrTransient,
		Message: domain.MsgAuthDown,
		Err:     err,
	}
}

// errorResponse covers both the legacy and current GoTrue error bodies.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e errorResponse) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error, e.ErrorCode} {
		if s != "" {
			return s
		}
	}
	return ""
}

// newRequest builds a request against the project with the anon key set.
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		r = strings.NewReader(string(b))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// doWithRetry executes an HTTP request, retrying once on 5xx or network
// errors. The request body is rewound through GetBody before the retry.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case <-time.After(c.retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind body: %w", err)
		}
		req.Body = body
	}

	return c.httpClient.Do(req)
}
