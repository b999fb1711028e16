package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
// RetryAfter is zero when the provider gave no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was cut off at MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}

// Failure classifies why a completion did not produce a usable answer.
type Failure int

const (
	FailureNone Failure = iota
	FailureTimeout
	FailureRateLimited
	FailureTruncated
	FailureUnreadable
	FailureUnavailable
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureTimeout:
		return "timeout"
	case FailureRateLimited:
		return "rate_limited"
	case FailureTruncated:
		return "truncated"
	case FailureUnreadable:
		return "unreadable"
	default:
		return "unavailable"
	}
}

// Classify reports the Failure behind err. Errors of unknown shape count
// as FailureUnavailable.
func Classify(err error) Failure {
	var (
		rateLimit *ErrRateLimit
		maxTokens *ErrMaxTokensExceeded
		invalid   *ErrInvalidResponse
	)
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	case errors.As(err, &rateLimit):
		return FailureRateLimited
	case errors.As(err, &maxTokens):
		return FailureTruncated
	case errors.As(err, &invalid):
		return FailureUnreadable
	default:
		return FailureUnavailable
	}
}
