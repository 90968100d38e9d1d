package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("storage.driver must be one of memory, sqlite, postgres (got %q)", c.Storage.Driver)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if c.NeedsDatabase() && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required when postgres is used for storage or entitlement")
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	loc, err := ParseTimezone(c.Journal.Timezone)
	if err != nil {
		return fmt.Errorf("journal.timezone: %w", err)
	}
	c.Journal.Location = loc

	if c.RateLimit.Enabled && (c.RateLimit.AIPerMinute <= 0 || c.RateLimit.LoginPerMinute <= 0) {
		return fmt.Errorf("rate_limit per-minute values must be > 0")
	}

	return nil
}

func (a *AuthConfig) validate() error {
	switch a.EntitlementSource {
	case EntitlementSupabase, EntitlementPostgres:
	default:
		return fmt.Errorf("entitlement_source must be supabase or postgres (got %q)", a.EntitlementSource)
	}

	if a.SupabaseURL != "" {
		u, err := url.Parse(a.SupabaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("supabase_url must be an absolute URL (got %q)", a.SupabaseURL)
		}
	}

	if a.JWTSecret != "" && len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}

	return nil
}

// Configured reports whether the auth provider URL and key are present.
func (a AuthConfig) Configured() bool {
	return a.SupabaseURL != "" && a.SupabaseKey != ""
}

func (a *AIConfig) validate() error {
	switch a.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("provider must be gemini or anthropic (got %q)", a.Provider)
	}

	if a.PlanTemperature < 0 || a.PlanTemperature > 2 {
		return fmt.Errorf("plan_temperature must be within [0, 2] (got %v)", a.PlanTemperature)
	}
	if a.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", a.MaxTokens)
	}

	if _, err := language.Parse(a.Language); err != nil {
		return fmt.Errorf("language %q: %w", a.Language, err)
	}

	return nil
}

// LanguageTag returns the parsed display language, falling back to Spanish.
func (a AIConfig) LanguageTag() language.Tag {
	tag, err := language.Parse(a.Language)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// ParseTimezone parses an IANA timezone name. "Local" and "" select the
// process's local zone.
func ParseTimezone(tz string) (*time.Location, error) {
	switch strings.TrimSpace(tz) {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}
