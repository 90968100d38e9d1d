package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// Entitled reads profiles.activo for userID through PostgREST, authorized
// by the current session. Only a literal JSON true grants access; a missing
// row is reported as domain.ErrNotFound.
func (c *Client) Entitled(ctx context.Context, userID uuid.UUID) (bool, error) {
	if !c.configured() {
		return false, c.credentialError("Entitled")
	}

	q := url.Values{}
	q.Set("select", "activo")
	q.Set("id", "eq."+userID.String())

	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/profiles?"+q.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("supabase.Entitled: %w", err)
	}

	c.mu.Lock()
	if c.session != nil && c.session.UserID == userID {
		req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)
	}
	c.mu.Unlock()

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "entitlement lookup failed", slog.String("error", err.Error()))
		return false, c.unavailable("Entitled", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.WarnContext(ctx, "entitlement lookup rejected", slog.Int("status", resp.StatusCode))
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return false, c.credentialError("Entitled")
		}
		return false, c.unavailable("Entitled", fmt.Errorf("status %d", resp.StatusCode))
	}

	var rows []map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return false, c.unavailable("Entitled", fmt.Errorf("decode profiles: %w", err))
	}
	if len(rows) == 0 {
		return false, fmt.Errorf("profile %s: %w", userID, domain.ErrNotFound)
	}

	return bytes.Equal(bytes.TrimSpace(rows[0]["activo"]), []byte("true")), nil
}
