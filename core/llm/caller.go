// Package llm wraps provider completion calls with kind-classified retry.
// One Caller is created per application start and reused across sequential
// calls; it holds no per-call state.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adalundhe/boardroom/core/errors"
	"github.com/adalundhe/boardroom/core/providers"
)

// ProgressFunc receives human-readable progress messages before each retry
// wait. It is observational only; a nil func disables reporting.
type ProgressFunc func(message string)

// Config controls the retry behavior of a Caller.
type Config struct {
	// MaxRetries is the total attempt budget per call.
	MaxRetries int `yaml:"max_retries"`

	// BaseDelay is the backoff unit the per-kind delay formulas scale.
	BaseDelay time.Duration `yaml:"base_delay"`

	// Progress receives retry progress messages. Optional.
	Progress ProgressFunc `yaml:"-"`

	// Logger for retry warnings. Optional, uses slog.Default() if nil.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the fixed retry constraints: three attempts, two
// second base delay.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
	}
}

// Caller invokes a model through the provider registry, retrying failed
// calls according to their classified kind.
type Caller struct {
	registry *providers.Registry
	config   Config
	logger   *slog.Logger

	// sleep is swapped for a recorder in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewCaller creates a Caller over a provider registry.
func NewCaller(registry *providers.Registry, cfg Config) *Caller {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultConfig().BaseDelay
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Caller{
		registry: registry,
		config:   cfg,
		logger:   logger,
		sleep:    sleepContext,
	}
}

// Call sends one prompt to the named model and returns the response text.
// On success the text is returned immediately; no retries happen after a
// success. Exhausted or non-retryable failures return a
// *errors.TerminalError.
func (c *Caller) Call(ctx context.Context, model, systemPrompt, prompt string, maxTokens int) (string, error) {
	provider, err := c.registry.ProviderFor(model)
	if err != nil {
		return "", errors.NewTerminal(errors.KindInvalidRequest, err.Error(), err, 0)
	}

	if budget := c.registry.MaxOutputTokens(model); maxTokens <= 0 || maxTokens > budget {
		maxTokens = budget
	}

	req := &providers.Request{
		Model:        model,
		SystemPrompt: systemPrompt,
		Prompt:       prompt,
		MaxTokens:    maxTokens,
	}

	var lastErr error
	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		resp, err := provider.Complete(ctx, req)
		if err == nil {
			return resp.Content, nil
		}
		lastErr = err

		kind := errors.Classify(err)
		if !kind.Retryable() {
			return "", c.terminal(kind, err, attempt+1)
		}
		if attempt == c.config.MaxRetries-1 {
			break
		}

		delay := kind.Delay(c.config.BaseDelay, attempt)
		c.report(kind, attempt, delay)
		if serr := c.sleep(ctx, delay); serr != nil {
			return "", errors.NewTerminal(kind, "call cancelled during backoff", lastErr, attempt+1)
		}
	}

	return "", c.terminal(errors.Classify(lastErr), lastErr, c.config.MaxRetries)
}

// terminal builds the per-kind terminal failure.
func (c *Caller) terminal(kind errors.Kind, err error, attempts int) error {
	var message string
	switch kind {
	case errors.KindAuthFailed:
		message = "invalid API key"
	case errors.KindOverloaded:
		message = "server overloaded"
	case errors.KindRateLimited:
		message = "rate limit exhausted"
	default:
		// invalid_request and unknown surface the original error text
		message = err.Error()
	}

	c.logger.Warn("llm call failed",
		"kind", kind.String(),
		"attempts", attempts,
		"error", err,
	)
	return errors.NewTerminal(kind, message, err, attempts)
}

// report emits one progress message per retry wait.
func (c *Caller) report(kind errors.Kind, attempt int, delay time.Duration) {
	if c.config.Progress == nil {
		return
	}
	c.config.Progress(fmt.Sprintf(
		"%s: attempt %d/%d failed, retrying in %s",
		kind, attempt+1, c.config.MaxRetries, delay,
	))
}

// sleepContext is a real blocking wait that still honors cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
