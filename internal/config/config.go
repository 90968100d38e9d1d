package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	AI        AIConfig        `yaml:"ai"`
	Journal   JournalConfig   `yaml:"journal"`
	Profile   ProfileConfig   `yaml:"profile"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StorageConfig selects the key-value substrate the journal is mirrored to.
type StorageConfig struct {
	Driver     string `yaml:"driver"      env:"STORAGE_DRIVER"      env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH" env-default:"./nutrigym.db"`
}

// DatabaseConfig holds PostgreSQL connection settings. Required only by the
// postgres storage driver and the postgres entitlement source.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Entitlement sources.
const (
	EntitlementSupabase = "supabase"
	EntitlementPostgres = "postgres"
)

// AuthConfig holds the external auth provider settings.
type AuthConfig struct {
	SupabaseURL       string        `yaml:"supabase_url"       env:"SUPABASE_URL"`
	SupabaseKey       string        `yaml:"supabase_key"       env:"SUPABASE_ANON_KEY"`
	JWTSecret         string        `yaml:"jwt_secret"         env:"SUPABASE_JWT_SECRET"`
	EntitlementSource string        `yaml:"entitlement_source" env:"AUTH_ENTITLEMENT_SOURCE" env-default:"supabase"`
	RequestTimeout    time.Duration `yaml:"request_timeout"    env:"AUTH_REQUEST_TIMEOUT"    env-default:"15s"`
}

// AI providers.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// AIConfig holds generative AI settings.
type AIConfig struct {
	Provider        string  `yaml:"provider"         env:"AI_PROVIDER"         env-default:"gemini"`
	APIKey          string  `yaml:"api_key"          env:"AI_API_KEY"`
	BaseURL         string  `yaml:"base_url"         env:"AI_BASE_URL"`
	Model           string  `yaml:"model"            env:"AI_MODEL"`
	PlanTemperature float64 `yaml:"plan_temperature" env:"AI_PLAN_TEMPERATURE" env-default:"0.7"`
	MaxTokens       int64   `yaml:"max_tokens"       env:"AI_MAX_TOKENS"       env-default:"4096"`
	Language        string  `yaml:"language"         env:"AI_LANGUAGE"         env-default:"es"`
}

// Default models per provider, used when AIConfig.Model is empty.
const (
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultAnthropicModel = "claude-sonnet-4-5"
)

// ModelOrDefault returns the configured model or the provider default.
func (c AIConfig) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderAnthropic {
		return DefaultAnthropicModel
	}
	return DefaultGeminiModel
}

// JournalConfig holds log store settings. Date keys are the calendar day in
// Timezone. "Local" or an IANA name keys by the user's local day.
type JournalConfig struct {
	Timezone string `yaml:"timezone" env:"JOURNAL_TIMEZONE" env-default:"UTC"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// ProfileConfig holds profile store settings.
type ProfileConfig struct {
	DefaultName string `yaml:"default_name" env:"PROFILE_DEFAULT_NAME" env-default:"Alex"`
}

// RateLimitConfig limits the AI endpoints per client.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	AIPerMinute     int           `yaml:"ai_per_minute"    env:"RATE_LIMIT_AI_PER_MINUTE"    env-default:"10"`
	LoginPerMinute  int           `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// NeedsDatabase reports whether any component requires PostgreSQL.
func (c *Config) NeedsDatabase() bool {
	return c.Storage.Driver == DriverPostgres || c.Auth.EntitlementSource == EntitlementPostgres
}
