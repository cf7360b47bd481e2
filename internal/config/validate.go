package config

import (
	"fmt"
)

var knownEnvironments = map[string]bool{
	"production":  true,
	"staging":     true,
	"development": true,
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !knownEnvironments[c.Environment] {
		return fmt.Errorf("environment must be production, staging or development (got %q)", c.Environment)
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Discovery.validate(); err != nil {
		return fmt.Errorf("discovery: %w", err)
	}

	if err := c.Consensus.validate(); err != nil {
		return fmt.Errorf("consensus: %w", err)
	}

	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai.max_tokens must be > 0 (got %d)", c.AI.MaxTokens)
	}
	if c.AI.RequestTimeout <= 0 {
		return fmt.Errorf("ai.request_timeout must be > 0 (got %v)", c.AI.RequestTimeout)
	}

	return nil
}

func (d *DiscoveryConfig) validate() error {
	if d.MinConfidence < 0 || d.MinConfidence > 1 {
		return fmt.Errorf("min_confidence must be in [0,1] (got %v)", d.MinConfidence)
	}
	if d.MaxDaily <= 0 {
		return fmt.Errorf("max_daily must be > 0 (got %d)", d.MaxDaily)
	}
	if d.BurstLimit <= 0 {
		return fmt.Errorf("burst_limit must be > 0 (got %d)", d.BurstLimit)
	}
	if d.BurstWindow <= 0 {
		return fmt.Errorf("burst_window must be > 0 (got %v)", d.BurstWindow)
	}
	if d.AIDailyQuota <= 0 {
		return fmt.Errorf("ai_daily_quota must be > 0 (got %d)", d.AIDailyQuota)
	}
	return nil
}

func (c *ConsensusConfig) validate() error {
	if c.MinValidations <= 0 {
		return fmt.Errorf("min_validations must be > 0 (got %d)", c.MinValidations)
	}
	if c.MaxErrors <= 0 {
		return fmt.Errorf("max_errors must be > 0 (got %d)", c.MaxErrors)
	}
	return nil
}
