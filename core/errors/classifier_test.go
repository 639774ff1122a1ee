package errors

import (
	"fmt"
	"testing"
	"time"
)

// =============================================================================
// Classification Tests
// =============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected Kind
	}{
		{"overloaded keyword", "anthropic complete: Overloaded, please retry", KindOverloaded},
		{"overloaded code", "api error 529: upstream saturated", KindOverloaded},
		{"rate limit keyword", "openai complete: rate_limit_exceeded", KindRateLimited},
		{"rate limit code", "HTTP 429 Too Many Requests", KindRateLimited},
		{"auth keyword", "authentication_error: bad key", KindAuthFailed},
		{"auth code", "status 401 unauthorized", KindAuthFailed},
		{"invalid keyword", "invalid_request_error: prompt too long", KindInvalidRequest},
		{"invalid code", "request rejected with 400", KindInvalidRequest},
		{"unknown", "connection reset by peer", KindUnknown},
		{"empty", "", KindUnknown},
		{"mixed case", "OVERLOADED upstream", KindOverloaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(fmt.Errorf("%s", tt.message))
			if got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.message, got, tt.expected)
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	if got := Classify(nil); got != KindUnknown {
		t.Errorf("Classify(nil) = %v, want unknown", got)
	}
}

// =============================================================================
// Retry Policy Tests
// =============================================================================

func TestKindRetryable(t *testing.T) {
	if KindAuthFailed.Retryable() {
		t.Error("auth_failed must not be retryable")
	}
	if KindInvalidRequest.Retryable() {
		t.Error("invalid_request must not be retryable")
	}
	for _, k := range []Kind{KindOverloaded, KindRateLimited, KindUnknown} {
		if !k.Retryable() {
			t.Errorf("%v should be retryable", k)
		}
	}
}

func TestKindDelay(t *testing.T) {
	base := 2 * time.Second

	tests := []struct {
		name     string
		kind     Kind
		attempt  int
		expected time.Duration
	}{
		{"overloaded first", KindOverloaded, 0, 2 * time.Second},
		{"overloaded second", KindOverloaded, 1, 4 * time.Second},
		{"overloaded third", KindOverloaded, 2, 8 * time.Second},
		{"rate limited first", KindRateLimited, 0, 7 * time.Second},
		{"rate limited second", KindRateLimited, 1, 9 * time.Second},
		{"rate limited third", KindRateLimited, 2, 13 * time.Second},
		{"unknown first", KindUnknown, 0, 2 * time.Second},
		{"unknown second", KindUnknown, 1, 4 * time.Second},
		{"unknown third", KindUnknown, 2, 6 * time.Second},
		{"auth no delay", KindAuthFailed, 0, 0},
		{"invalid no delay", KindInvalidRequest, 1, 0},
		{"negative attempt clamped", KindOverloaded, -3, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.kind.Delay(base, tt.attempt)
			if got != tt.expected {
				t.Errorf("%v.Delay(2s, %d) = %v, want %v", tt.kind, tt.attempt, got, tt.expected)
			}
		})
	}
}

// =============================================================================
// TerminalError Tests
// =============================================================================

func TestTerminalError(t *testing.T) {
	underlying := fmt.Errorf("api error 529")
	err := NewTerminal(KindOverloaded, "server overloaded", underlying, 3)

	if err.Error() != "[overloaded] server overloaded: api error 529" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.Unwrap() != underlying {
		t.Error("Unwrap should return the underlying error")
	}
	if got := GetKind(err); got != KindOverloaded {
		t.Errorf("GetKind = %v, want overloaded", got)
	}
}

func TestGetKindClassifiesPlainErrors(t *testing.T) {
	if got := GetKind(fmt.Errorf("429 slow down")); got != KindRateLimited {
		t.Errorf("GetKind = %v, want rate_limited", got)
	}
}
