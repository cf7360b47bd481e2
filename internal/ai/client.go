package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dexai-ro/dexai-backend/internal/config"
)

var (
	// ErrUnavailable means the model could not be reached (transport
	// failure, timeout, provider outage). The caller may retry later.
	ErrUnavailable = errors.New("ai service unavailable")

	// ErrInvalidAnalysis means the model answered, but the answer does
	// not satisfy the output contract. Not retryable with the same input.
	ErrInvalidAnalysis = errors.New("invalid ai analysis")
)

// Analyzer produces a structured analysis for a single Romanian word.
type Analyzer interface {
	Analyze(ctx context.Context, word string) (*WordAnalysis, error)
}

// Client is the Anthropic-backed Analyzer.
type Client struct {
	api     anthropic.Client
	model   anthropic.Model
	maxTok  int64
	timeout time.Duration
	log     *slog.Logger
}

// NewClient builds an Analyzer from the AI configuration.
func NewClient(cfg config.AIConfig, log *slog.Logger) *Client {
	return &Client{
		api:     anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:   anthropic.Model(cfg.Model),
		maxTok:  int64(cfg.MaxTokens),
		timeout: cfg.RequestTimeout,
		log:     log,
	}
}

// Analyze implements Analyzer. The per-request timeout is enforced here,
// so callers pass their own ctx unmodified.
func (c *Client) Analyze(ctx context.Context, word string) (*WordAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTok,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(word))),
		},
	})
	if err != nil {
		c.log.Error("ai request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("%w: empty response for %q", ErrInvalidAnalysis, word)
	}

	analysis, err := parseAnalysis(msg.Content[0].Text)
	if err != nil {
		c.log.Warn("ai response rejected", slog.String("word", word), slog.String("error", err.Error()))
		return nil, err
	}

	c.log.Info("ai analysis complete",
		slog.String("word", word),
		slog.Float64("confidence", analysis.Confidence),
		slog.Bool("is_valid", analysis.IsValid),
		slog.Duration("took", time.Since(start)),
	)
	return analysis, nil
}

// parseAnalysis extracts, unmarshals and validates the model's answer.
func parseAnalysis(text string) (*WordAnalysis, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
	}

	var analysis WordAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
	}

	// A self-reported non-word is still a well-formed answer; the caller
	// checks IsValid and Confidence. Everything else must hold.
	if analysis.IsValid {
		if err := analysis.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAnalysis, err)
		}
	}
	return &analysis, nil
}

// extractJSON finds the first complete JSON object in a string. Models
// occasionally wrap the object in markdown fences despite instructions.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
