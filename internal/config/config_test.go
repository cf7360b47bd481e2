package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
	t.Setenv("AI_API_KEY", "test-api-key")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_EnvOnly_Defaults(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Environment != "production" {
		t.Errorf("default environment = %q, want production", cfg.Environment)
	}
	if !cfg.IsProduction() {
		t.Error("default config should be production")
	}
	if cfg.Discovery.MinConfidence != 0.7 {
		t.Errorf("default min_confidence = %v, want 0.7", cfg.Discovery.MinConfidence)
	}
	if cfg.Discovery.MaxDaily != 50 {
		t.Errorf("default max_daily = %d, want 50", cfg.Discovery.MaxDaily)
	}
	if cfg.Consensus.MinValidations != 5 || cfg.Consensus.MaxErrors != 3 {
		t.Errorf("default consensus thresholds = %d/%d, want 5/3", cfg.Consensus.MinValidations, cfg.Consensus.MaxErrors)
	}
	if cfg.RateLimit.VotesPerWindow != 20 || cfg.RateLimit.VoteWindow != time.Minute {
		t.Errorf("default vote limit = %d/%v, want 20/1m", cfg.RateLimit.VotesPerWindow, cfg.RateLimit.VoteWindow)
	}
	if !cfg.Discovery.AllowAnonymous {
		t.Error("anonymous discovery should default to allowed")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	validEnv(t)

	yaml := `
environment: development
server:
  port: 9090
discovery:
  max_daily: 10
consensus:
  min_validations: 7
`
	path := writeYAML(t, t.TempDir(), yaml)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.IsProduction() {
		t.Error("development config should not be production")
	}
	if cfg.Discovery.MaxDaily != 10 {
		t.Errorf("max_daily = %d, want 10", cfg.Discovery.MaxDaily)
	}
	if cfg.Consensus.MinValidations != 7 {
		t.Errorf("min_validations = %d, want 7", cfg.Consensus.MinValidations)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		return &Config{
			Environment: "production",
			Auth:        AuthConfig{JWTSecret: "0123456789abcdef0123456789abcdef"},
			AI:          AIConfig{MaxTokens: 2000, RequestTimeout: 45 * time.Second},
			Discovery: DiscoveryConfig{
				MinConfidence: 0.7,
				MaxDaily:      50,
				BurstLimit:    5,
				BurstWindow:   time.Minute,
				AIDailyQuota:  50,
			},
			Consensus: ConsensusConfig{MinValidations: 5, MaxErrors: 3},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "short jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, wantErr: true},
		{name: "unknown environment", mutate: func(c *Config) { c.Environment = "prod" }, wantErr: true},
		{name: "confidence above one", mutate: func(c *Config) { c.Discovery.MinConfidence = 1.5 }, wantErr: true},
		{name: "zero daily quota", mutate: func(c *Config) { c.Discovery.MaxDaily = 0 }, wantErr: true},
		{name: "zero burst window", mutate: func(c *Config) { c.Discovery.BurstWindow = 0 }, wantErr: true},
		{name: "zero validations threshold", mutate: func(c *Config) { c.Consensus.MinValidations = 0 }, wantErr: true},
		{name: "zero ai timeout", mutate: func(c *Config) { c.AI.RequestTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
