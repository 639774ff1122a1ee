// Package errors implements the failure taxonomy for LLM invocations:
// classification of provider errors into retry kinds, per-kind backoff
// policy, and the terminal error surfaced when retries are exhausted.
package errors

import (
	goerrors "errors"
	"fmt"
	"time"
)

// Kind classifies a failed LLM call. Each kind has a fixed retry behavior.
type Kind int

const (
	// KindUnknown covers any failure the classifier cannot place. Retried
	// with linear backoff.
	KindUnknown Kind = iota

	// KindOverloaded indicates the provider is shedding load (529 or an
	// "overloaded" message). Retried with exponential backoff.
	KindOverloaded

	// KindRateLimited indicates request throttling (429 or "rate_limit").
	// Retried with exponential backoff plus a fixed penalty.
	KindRateLimited

	// KindAuthFailed indicates a rejected API key (401 or "authentication").
	// Never retried.
	KindAuthFailed

	// KindInvalidRequest indicates a malformed request (400 or
	// "invalid_request"). Never retried.
	KindInvalidRequest
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindOverloaded:     "overloaded",
	KindRateLimited:    "rate_limited",
	KindAuthFailed:     "auth_failed",
	KindInvalidRequest: "invalid_request",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Retryable reports whether calls failing with this kind may be retried.
func (k Kind) Retryable() bool {
	switch k {
	case KindAuthFailed, KindInvalidRequest:
		return false
	default:
		return true
	}
}

// Delay returns the wait before retry attempt number attempt (0-indexed)
// for this kind, given the base delay:
//
//	overloaded:   base * 2^attempt
//	rate_limited: base * 2^attempt + 5s
//	unknown:      base * (attempt+1)
//
// Non-retryable kinds return zero.
func (k Kind) Delay(base time.Duration, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	switch k {
	case KindOverloaded:
		return base << attempt
	case KindRateLimited:
		return base<<attempt + 5*time.Second
	case KindUnknown:
		return base * time.Duration(attempt+1)
	default:
		return 0
	}
}

// TerminalError is the failure surfaced to a seat's runner once no further
// retry will be attempted within the current call.
type TerminalError struct {
	Kind       Kind
	Message    string
	Underlying error
	// Attempts is how many calls were made before giving up.
	Attempts int
}

func (e *TerminalError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *TerminalError) Unwrap() error {
	return e.Underlying
}

// NewTerminal creates a TerminalError for a kind.
func NewTerminal(kind Kind, message string, underlying error, attempts int) *TerminalError {
	return &TerminalError{
		Kind:       kind,
		Message:    message,
		Underlying: underlying,
		Attempts:   attempts,
	}
}

// GetKind extracts the Kind from an error, classifying on the fly when the
// error is not already terminal.
func GetKind(err error) Kind {
	var te *TerminalError
	if goerrors.As(err, &te) {
		return te.Kind
	}
	return Classify(err)
}
