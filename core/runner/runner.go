// Package runner executes one seat end to end: prompt assembly, the retried
// model call, and extraction of the structured fields from the response.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adalundhe/boardroom/core/errors"
	"github.com/adalundhe/boardroom/core/extract"
	"github.com/adalundhe/boardroom/core/prompt"
	"github.com/adalundhe/boardroom/core/review"
	"github.com/adalundhe/boardroom/core/roles"
)

// LLMCaller is the completion capability the runner needs. core/llm.Caller
// satisfies it; tests substitute fakes.
type LLMCaller interface {
	Call(ctx context.Context, model, systemPrompt, prompt string, maxTokens int) (string, error)
}

// Options carries the per-invocation inputs beyond the role and subject.
type Options struct {
	// Model is the model name to call.
	Model string
	// MaxTokens bounds the response; zero lets the caller pick the model
	// budget.
	MaxTokens int
	// Others embeds prior seat results; only the integration seat uses it.
	Others []review.AgentResult
	// Instructions is caller-supplied free text, included verbatim.
	Instructions string
}

// Runner executes single seats. One Runner is shared across a run; it holds
// no per-invocation state.
type Runner struct {
	builder *prompt.Builder
	caller  LLMCaller
	logger  *slog.Logger
}

// Config configures a Runner.
type Config struct {
	// Logger is optional, uses slog.Default() if nil.
	Logger *slog.Logger
}

// New creates a Runner over an LLM caller.
func New(caller LLMCaller, cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		builder: prompt.NewBuilder(),
		caller:  caller,
		logger:  logger,
	}
}

// Run executes one seat and always returns a result: terminal call failures
// become an Error=true result with a human-readable explanation, never an
// error to the caller. The orchestration loop treats failed seats as skip
// and continue.
func (r *Runner) Run(ctx context.Context, role roles.Role, subject *review.Subject, opts Options) review.AgentResult {
	profile, err := roles.GetProfile(role)
	if err != nil {
		return r.failed(role, opts.Model, errors.KindInvalidRequest, err)
	}

	userPrompt, err := r.builder.Build(role, subject, opts.Others, opts.Instructions)
	if err != nil {
		return r.failed(role, opts.Model, errors.KindInvalidRequest, err)
	}

	text, err := r.caller.Call(ctx, opts.Model, profile.SystemPrompt, userPrompt, opts.MaxTokens)
	if err != nil {
		return r.failed(role, opts.Model, errors.GetKind(err), err)
	}

	fields := extract.Extract(text)
	return review.AgentResult{
		Role:            role,
		Analysis:        text,
		Recommendations: fields.Recommendations,
		RiskAssessment:  fields.RiskAssessment,
		Score:           fields.Score,
		Model:           opts.Model,
		CreatedAt:       time.Now(),
	}
}

// failed wraps a terminal failure into a skippable result.
func (r *Runner) failed(role roles.Role, model string, kind errors.Kind, err error) review.AgentResult {
	r.logger.Warn("seat failed",
		"role", string(role),
		"kind", kind.String(),
		"error", err,
	)
	return review.AgentResult{
		Role:        role,
		Analysis:    fmt.Sprintf("analysis unavailable (%s): %v", kind, err),
		Score:       extract.DefaultScore,
		Model:       model,
		Error:       true,
		FailureKind: kind.String(),
		CreatedAt:   time.Now(),
	}
}
