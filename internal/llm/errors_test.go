package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Failure
	}{
		{"nil", nil, FailureNone},
		{"deadline", fmt.Errorf("complete: %w", context.DeadlineExceeded), FailureTimeout},
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, FailureRateLimited},
		{"wrapped rate limit", fmt.Errorf("solve: %w", &ErrRateLimit{}), FailureRateLimited},
		{"max tokens", &ErrMaxTokensExceeded{}, FailureTruncated},
		{"invalid", &ErrInvalidResponse{Err: errors.New("bad json")}, FailureUnreadable},
		{"unavailable", &ErrProviderUnavailable{}, FailureUnavailable},
		{"unknown", errors.New("boom"), FailureUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFailure_String(t *testing.T) {
	if got := FailureRateLimited.String(); got != "rate_limited" {
		t.Errorf("String = %q, want rate_limited", got)
	}
}
