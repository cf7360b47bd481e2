package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Environment string          `yaml:"environment" env:"ENVIRONMENT" env-default:"production"`
	Server      ServerConfig    `yaml:"server"`
	Database    DatabaseConfig  `yaml:"database"`
	Redis       RedisConfig     `yaml:"redis"`
	Auth        AuthConfig      `yaml:"auth"`
	AI          AIConfig        `yaml:"ai"`
	Discovery   DiscoveryConfig `yaml:"discovery"`
	Consensus   ConsensusConfig `yaml:"consensus"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Log         LogConfig       `yaml:"log"`
	CORS        CORSConfig      `yaml:"cors"`
}

// IsProduction reports whether the app runs against production traffic.
// Development-only operations (word regeneration) are gated on this.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// RedisConfig holds optional Redis settings for the shared quota tracker.
// When Addr is empty the in-memory tracker is used instead, which is only
// correct for single-instance deployments.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// AuthConfig holds bearer-token verification settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"dexai"`
	AccessTTL time.Duration `yaml:"access_ttl" env:"AUTH_ACCESS_TTL" env-default:"24h"`
}

// AIConfig holds settings for the word analysis gateway.
type AIConfig struct {
	APIKey         string        `yaml:"api_key"         env:"AI_API_KEY"         env-required:"true"`
	Model          string        `yaml:"model"           env:"AI_MODEL"           env-default:"claude-sonnet-4-5"`
	MaxTokens      int           `yaml:"max_tokens"      env:"AI_MAX_TOKENS"      env-default:"2000"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"AI_REQUEST_TIMEOUT" env-default:"45s"`
}

// DiscoveryConfig holds the word-discovery policy knobs.
type DiscoveryConfig struct {
	// MinConfidence is the business floor below which an AI analysis is
	// never trusted as a new dictionary entry.
	MinConfidence float64 `yaml:"min_confidence" env:"DISCOVERY_MIN_CONFIDENCE" env-default:"0.7"`

	// MaxDaily is the ledger-derived daily discovery ceiling per user.
	MaxDaily int `yaml:"max_daily" env:"DISCOVERY_MAX_DAILY" env-default:"50"`

	// BurstLimit rejects more than this many discoveries within BurstWindow.
	BurstLimit  int           `yaml:"burst_limit"  env:"DISCOVERY_BURST_LIMIT"  env-default:"5"`
	BurstWindow time.Duration `yaml:"burst_window" env:"DISCOVERY_BURST_WINDOW" env-default:"1m"`

	// AIDailyQuota caps AI generation calls per identity per day (cost control).
	AIDailyQuota int `yaml:"ai_daily_quota" env:"DISCOVERY_AI_DAILY_QUOTA" env-default:"50"`

	// AllowAnonymous lets unauthenticated searches trigger AI discovery
	// (no points are awarded). Gating discovery on authentication is a
	// deployment choice, not a fixed contract.
	AllowAnonymous bool `yaml:"allow_anonymous" env:"DISCOVERY_ALLOW_ANONYMOUS" env-default:"true"`

	// AnonymousDailyQuota caps anonymous AI generation per client IP per day.
	AnonymousDailyQuota int `yaml:"anonymous_daily_quota" env:"DISCOVERY_ANON_DAILY_QUOTA" env-default:"10"`
}

// ConsensusConfig holds the community-verification thresholds.
type ConsensusConfig struct {
	MinValidations int `yaml:"min_validations" env:"CONSENSUS_MIN_VALIDATIONS" env-default:"5"`
	MaxErrors      int `yaml:"max_errors"      env:"CONSENSUS_MAX_ERRORS"      env-default:"3"`
}

// RateLimitConfig holds per-endpoint rate limit settings.
type RateLimitConfig struct {
	VotesPerWindow int           `yaml:"votes_per_window" env:"RATELIMIT_VOTES_PER_WINDOW" env-default:"20"`
	VoteWindow     time.Duration `yaml:"vote_window"      env:"RATELIMIT_VOTE_WINDOW"      env-default:"1m"`
	FlagsPerWindow int           `yaml:"flags_per_window" env:"RATELIMIT_FLAGS_PER_WINDOW" env-default:"5"`
	FlagWindow     time.Duration `yaml:"flag_window"      env:"RATELIMIT_FLAG_WINDOW"      env-default:"1h"`

	// SearchPerMinute is the per-IP token-bucket ceiling on the search endpoint.
	SearchPerMinute int `yaml:"search_per_minute" env:"RATELIMIT_SEARCH_PER_MINUTE" env-default:"30"`

	// SweepInterval is how often expired quota windows are evicted.
	SweepInterval time.Duration `yaml:"sweep_interval" env:"RATELIMIT_SWEEP_INTERVAL" env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
