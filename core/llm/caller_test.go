package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/adalundhe/boardroom/core/errors"
	"github.com/adalundhe/boardroom/core/providers"
)

// scriptedProvider returns canned outcomes in order, one per Complete call.
type scriptedProvider struct {
	outcomes []outcome
	calls    int
	requests []*providers.Request
}

type outcome struct {
	content string
	err     error
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) SupportedModels() []providers.ModelInfo {
	return []providers.ModelInfo{
		{ID: "test-model", Name: "Test Model", MaxContext: 200000, MaxOutput: 8192},
	}
}

func (p *scriptedProvider) SupportsModel(model string) bool {
	return model == "test-model"
}

func (p *scriptedProvider) Complete(ctx context.Context, req *providers.Request) (*providers.Response, error) {
	p.requests = append(p.requests, req)
	if p.calls >= len(p.outcomes) {
		return nil, fmt.Errorf("unscripted call %d", p.calls)
	}
	o := p.outcomes[p.calls]
	p.calls++
	if o.err != nil {
		return nil, o.err
	}
	return &providers.Response{Content: o.content, Model: req.Model}, nil
}

func newTestCaller(t *testing.T, p providers.Provider) (*Caller, *[]time.Duration) {
	t.Helper()

	registry := providers.NewRegistry()
	if err := registry.Register(p); err != nil {
		t.Fatalf("register provider: %v", err)
	}

	c := NewCaller(registry, Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	var slept []time.Duration
	c.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

// =============================================================================
// Success Path Tests
// =============================================================================

func TestCallSucceedsFirstAttempt(t *testing.T) {
	p := &scriptedProvider{outcomes: []outcome{{content: "analysis text"}}}
	c, slept := newTestCaller(t, p)

	got, err := c.Call(context.Background(), "test-model", "system", "prompt", 1024)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if got != "analysis text" {
		t.Errorf("content = %q, want %q", got, "analysis text")
	}
	if p.calls != 1 {
		t.Errorf("provider called %d times, want 1", p.calls)
	}
	if len(*slept) != 0 {
		t.Errorf("slept %d times on success, want 0", len(*slept))
	}
}

func TestCallSucceedsAfterRateLimits(t *testing.T) {
	p := &scriptedProvider{outcomes: []outcome{
		{err: fmt.Errorf("429 rate_limit_error")},
		{err: fmt.Errorf("429 rate_limit_error")},
		{content: "third time lucky"},
	}}
	c, slept := newTestCaller(t, p)

	got, err := c.Call(context.Background(), "test-model", "system", "prompt", 1024)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if got != "third time lucky" {
		t.Errorf("content = %q", got)
	}
	if p.calls != 3 {
		t.Errorf("provider called %d times, want 3", p.calls)
	}

	// rate_limited backoff: 2*2^0+5 = 7s, then 2*2^1+5 = 9s
	want := []time.Duration{7 * time.Second, 9 * time.Second}
	if len(*slept) != len(want) {
		t.Fatalf("slept %d times, want %d", len(*slept), len(want))
	}
	for i, d := range want {
		if (*slept)[i] != d {
			t.Errorf("sleep %d = %v, want %v", i, (*slept)[i], d)
		}
	}
}

func TestCallOverloadedBackoff(t *testing.T) {
	p := &scriptedProvider{outcomes: []outcome{
		{err: fmt.Errorf("api error 529: overloaded")},
		{content: "recovered"},
	}}
	c, slept := newTestCaller(t, p)

	if _, err := c.Call(context.Background(), "test-model", "system", "prompt", 1024); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if len(*slept) != 1 || (*slept)[0] != 2*time.Second {
		t.Errorf("slept %v, want [2s]", *slept)
	}
}

// =============================================================================
// Failure Path Tests
// =============================================================================

func TestCallAuthFailureNoRetry(t *testing.T) {
	p := &scriptedProvider{outcomes: []outcome{
		{err: fmt.Errorf("authentication_error: invalid x-api-key")},
	}}
	c, slept := newTestCaller(t, p)

	_, err := c.Call(context.Background(), "test-model", "system", "prompt", 1024)
	if err == nil {
		t.Fatal("expected terminal error")
	}
	if p.calls != 1 {
		t.Errorf("provider called %d times, want 1 (no retry on auth)", p.calls)
	}
	if len(*slept) != 0 {
		t.Errorf("slept on non-retryable failure: %v", *slept)
	}

	te, ok := err.(*errors.TerminalError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.TerminalError", err)
	}
	if te.Kind != errors.KindAuthFailed {
		t.Errorf("kind = %v, want auth_failed", te.Kind)
	}
	if te.Message != "invalid API key" {
		t.Errorf("message = %q", te.Message)
	}
	if te.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", te.Attempts)
	}
}

func TestCallInvalidRequestNoRetry(t *testing.T) {
	p := &scriptedProvider{outcomes: []outcome{
		{err: fmt.Errorf("invalid_request_error: max_tokens too large")},
	}}
	c, _ := newTestCaller(t, p)

	_, err := c.Call(context.Background(), "test-model", "system", "prompt", 1024)
	if err == nil {
		t.Fatal("expected terminal error")
	}
	if p.calls != 1 {
		t.Errorf("provider called %d times, want 1", p.calls)
	}
	if kind := errors.GetKind(err); kind != errors.KindInvalidRequest {
		t.Errorf("kind = %v, want invalid_request", kind)
	}
}

func TestCallExhaustsRetries(t *testing.T) {
	p := &scriptedProvider{outcomes: []outcome{
		{err: fmt.Errorf("529 overloaded")},
		{err: fmt.Errorf("529 overloaded")},
		{err: fmt.Errorf("529 overloaded")},
	}}
	c, slept := newTestCaller(t, p)

	_, err := c.Call(context.Background(), "test-model", "system", "prompt", 1024)
	if err == nil {
		t.Fatal("expected terminal error")
	}
	if p.calls != 3 {
		t.Errorf("provider called %d times, want exactly 3", p.calls)
	}
	// No wait after the final attempt.
	if len(*slept) != 2 {
		t.Errorf("slept %d times, want 2", len(*slept))
	}

	te, ok := err.(*errors.TerminalError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if te.Message != "server overloaded" {
		t.Errorf("message = %q", te.Message)
	}
	if te.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", te.Attempts)
	}
}

func TestCallUnknownModel(t *testing.T) {
	p := &scriptedProvider{}
	c, _ := newTestCaller(t, p)

	_, err := c.Call(context.Background(), "no-such-model", "system", "prompt", 1024)
	if err == nil {
		t.Fatal("expected error for unregistered model")
	}
	if p.calls != 0 {
		t.Error("provider should never be called for an unknown model")
	}
	if kind := errors.GetKind(err); kind != errors.KindInvalidRequest {
		t.Errorf("kind = %v, want invalid_request", kind)
	}
}

func TestCallClampsMaxTokens(t *testing.T) {
	p := &scriptedProvider{outcomes: []outcome{{content: "ok"}, {content: "ok"}}}
	c, _ := newTestCaller(t, p)

	if _, err := c.Call(context.Background(), "test-model", "s", "p", 100000); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if _, err := c.Call(context.Background(), "test-model", "s", "p", 0); err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	for i, req := range p.requests {
		if req.MaxTokens != 8192 {
			t.Errorf("request %d MaxTokens = %d, want model budget 8192", i, req.MaxTokens)
		}
	}
}

func TestCallProgressReporting(t *testing.T) {
	p := &scriptedProvider{outcomes: []outcome{
		{err: fmt.Errorf("429 rate_limit_error")},
		{content: "done"},
	}}

	registry := providers.NewRegistry()
	if err := registry.Register(p); err != nil {
		t.Fatalf("register provider: %v", err)
	}

	var messages []string
	c := NewCaller(registry, Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		Progress:   func(msg string) { messages = append(messages, msg) },
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	c.sleep = func(ctx context.Context, d time.Duration) error { return nil }

	if _, err := c.Call(context.Background(), "test-model", "s", "p", 1024); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("got %d progress messages, want 1", len(messages))
	}
	if messages[0] != "rate_limited: attempt 1/3 failed, retrying in 7s" {
		t.Errorf("unexpected progress message: %q", messages[0])
	}
}
