package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// tokenResponse is the GoTrue session payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignInWithPassword exchanges email and password for a session. On success
// the session becomes current and SIGNED_IN is emitted.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	if !c.configured() {
		return nil, c.credentialError("SignInWithPassword")
	}

	s, err := c.grant(ctx, "password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.session = s
	c.mu.Unlock()

	c.log.InfoContext(ctx, "signed in", slog.String("user_id", s.UserID.String()))
	c.emit(domain.AuthEventSignedIn, s)
	return clone(s), nil
}

// GetSession returns the current session or nil. An expired session is
// refreshed; when the refresh fails the session is dropped and SIGNED_OUT
// is emitted.
func (c *Client) GetSession(ctx context.Context) (*domain.Session, error) {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()

	if s == nil {
		return nil, nil
	}
	if !s.IsExpired(c.now()) {
		return clone(s), nil
	}

	v, err, _ := c.refreshGroup.Do(s.RefreshToken, func() (any, error) {
		return c.refresh(ctx, s)
	})
	if err != nil {
		c.log.WarnContext(ctx, "session lost", slog.String("error", err.Error()))
		if c.drop(s) {
			c.emit(domain.AuthEventSignedOut, nil)
		}
		return nil, nil
	}
	return clone(v.(*domain.Session)), nil
}

func (c *Client) refresh(ctx context.Context, old *domain.Session) (*domain.Session, error) {
	if !c.configured() {
		return nil, c.credentialError("refresh")
	}
	if old.RefreshToken == "" {
		return nil, errors.New("no refresh token")
	}

	s, err := c.grant(ctx, "refresh_token", map[string]string{
		"refresh_token": old.RefreshToken,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if !c.session.Same(old) {
		// replaced while refreshing
		cur := c.session
		c.mu.Unlock()
		if cur == nil {
			return nil, errors.New("signed out during refresh")
		}
		return cur, nil
	}
	c.session = s
	c.mu.Unlock()

	c.log.DebugContext(ctx, "session refreshed", slog.String("user_id", s.UserID.String()))
	c.emit(domain.AuthEventTokenRefreshed, s)
	return s, nil
}

// SignOut revokes the current session remotely and always clears it
// locally. SIGNED_OUT is emitted when a session was present.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	s := c.session
	c.session = nil
	c.mu.Unlock()

	if s == nil {
		return nil
	}
	defer c.emit(domain.AuthEventSignedOut, nil)

	if !c.configured() {
		return nil
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("supabase.SignOut: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.AccessToken)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return c.unavailable("SignOut", err)
	}
	defer resp.Body.Close()

	// 401/404 mean the token is already gone
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusNotFound {
		return c.unavailable("SignOut", fmt.Errorf("status %d", resp.StatusCode))
	}
	return nil
}

// OnAuthStateChange registers h and returns a function that removes it.
// Handlers run synchronously on the goroutine that caused the change.
func (c *Client) OnAuthStateChange(h Handler) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = h
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Client) emit(event domain.AuthEvent, s *domain.Session) {
	c.mu.Lock()
	handlers := make([]Handler, 0, len(c.subs))
	for i := 0; i < c.nextSub; i++ {
		if h, ok := c.subs[i]; ok {
			handlers = append(handlers, h)
		}
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(event, clone(s))
	}
}

// drop clears the current session if it is still s.
func (c *Client) drop(s *domain.Session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.session.Same(s) {
		return false
	}
	c.session = nil
	return true
}

func (c *Client) grant(ctx context.Context, grantType string, body map[string]string) (*domain.Session, error) {
	op := "grant." + grantType

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/token?grant_type="+grantType, body)
	if err != nil {
		return nil, fmt.Errorf("supabase.%s: %w", op, err)
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "supabase token request failed", slog.String("grant", grantType), slog.String("error", err.Error()))
		return nil, c.unavailable(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.unavailable(op, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.grantError(ctx, op, resp.StatusCode, raw)
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, c.unavailable(op, fmt.Errorf("decode token response: %w", err))
	}
	if tr.AccessToken == "" {
		return nil, c.unavailable(op, errors.New("missing access_token"))
	}

	return c.toSession(tr)
}

func (c *Client) grantError(ctx context.Context, op string, status int, raw []byte) error {
	var er errorResponse
	_ = json.Unmarshal(raw, &er)
	detail := er.text()

	c.log.WarnContext(ctx, "supabase token request rejected",
		slog.String("op", op),
		slog.Int("status", status),
		slog.String("error", detail))

	switch {
	case status == http.StatusBadRequest:
		return &domain.ProviderError{
			Op:      "supabase." + op,
			Kind:    domain.ErrUnauthorized,
			Message: domain.MsgLogin,
			Err:     errors.New(detail),
		}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		// the anon key itself was rejected
		return &domain.ProviderError{
			Op:      "supabase." + op,
			Kind:    domain.ErrCredential,
			Message: domain.MsgCredential,
			Err:     errors.New(detail),
		}
	}
	return c.unavailable(op, fmt.Errorf("status %d: %s", status, detail))
}

func (c *Client) toSession(tr tokenResponse) (*domain.Session, error) {
	s := &domain.Session{
		Email:        tr.User.Email,
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
	}

	switch {
	case tr.ExpiresAt > 0:
		s.ExpiresAt = time.Unix(tr.ExpiresAt, 0)
	case tr.ExpiresIn > 0:
		s.ExpiresAt = c.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	if id, err := uuid.Parse(tr.User.ID); err == nil {
		s.UserID = id
	}

	if c.tokens != nil {
		ident, err := c.tokens.Parse(tr.AccessToken)
		switch {
		case err != nil && (c.tokens.Verifies() || s.UserID == uuid.Nil):
			return nil, &domain.ProviderError{
				Op:      "supabase.session",
				Kind:    domain.ErrUnauthorized,
				Message: domain.MsgLogin,
				Err:     err,
			}
		case err != nil:
			// unverified and undecodable: the user payload is enough
		case s.UserID != uuid.Nil && ident.UserID != s.UserID:
			return nil, &domain.ProviderError{
				Op:      "supabase.session",
				Kind:    domain.ErrUnauthorized,
				Message: domain.MsgLogin,
				Err:     errors.New("token subject does not match user"),
			}
		default:
			s.UserID = ident.UserID
			if s.Email == "" {
				s.Email = ident.Email
			}
			if s.ExpiresAt.IsZero() {
				s.ExpiresAt = ident.ExpiresAt
			}
		}
	}

	if s.UserID == uuid.Nil {
		return nil, c.unavailable("session", errors.New("session without user id"))
	}
	return s, nil
}

func clone(s *domain.Session) *domain.Session {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
