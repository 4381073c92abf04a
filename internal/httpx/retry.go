// Package httpx provides the retry wrapper and connectivity probe used by
// the session layer for calls against the LMS backend.
package httpx

import (
	"context"
	"strings"
	"time"
)

const (
	// DefaultMaxRetries is the retry bound applied by callers that do
	// not pick their own.
	DefaultMaxRetries = 3

	// DefaultBaseDelay is the base linear backoff step.
	DefaultBaseDelay = 1 * time.Second
)

// WithRetry runs op up to maxRetries+1 times, sleeping baseDelay*attempt
// between attempts (linear, not exponential). Callers must ensure op is
// idempotent. An error whose text indicates an authorization failure stops
// retrying immediately: a bad credential does not get better with time.
// On exhaustion the last observed error is returned; a failure is never
// swallowed. Cancelling ctx aborts the backoff wait.
func WithRetry[T any](ctx context.Context, maxRetries int, baseDelay time.Duration, op func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(time.Duration(attempt) * baseDelay):
			}
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if IsAuthFailure(err) {
			return zero, err
		}
	}
	return zero, lastErr
}

// IsAuthFailure reports whether err textually indicates an authorization
// failure (a 401 status or an "unauthorized" message).
func IsAuthFailure(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "401") || strings.Contains(strings.ToLower(msg), "unauthorized")
}
