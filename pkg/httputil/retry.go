package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, 5xx responses) with this type
// so that [Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as a RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is wrapped with [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// Retry executes fn up to attempts times with exponential backoff.
// It only retries errors wrapped with [RetryableError]; other errors are
// returned immediately. The delay doubles after each failed attempt.
// Returns the last error if all attempts fail, or ctx.Err() if cancelled.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			if err := sleep(ctx, delay); err != nil {
				return err
			}
			delay *= 2
		}
	}
	return lastErr
}

// RetryDelays executes fn once, then once more after each delay in delays
// while it keeps failing with a [RetryableError].
func RetryDelays(ctx context.Context, delays []time.Duration, fn func() error) error {
	var lastErr error

	for i := 0; i <= len(delays); i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < len(delays) {
			if err := sleep(ctx, delays[i]); err != nil {
				return err
			}
		}
	}
	return lastErr
}

// Policy groups the two retry schedules used against the icon registry.
type Policy struct {
	// NetworkDelays is the fixed schedule for transport failures (no
	// response at all).
	NetworkDelays []time.Duration
	// StatusRetries is how many times a 429 or 5xx response is retried.
	StatusRetries int
	// StatusDelay is the first backoff delay for status retries. It doubles
	// after each retry.
	StatusDelay time.Duration
}

// DefaultPolicy returns the production schedules: transport failures after
// 250ms, 500ms and 1s; throttling and server errors up to three times from
// 300ms doubling.
func DefaultPolicy() Policy {
	return Policy{
		NetworkDelays: []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, time.Second},
		StatusRetries: 3,
		StatusDelay:   300 * time.Millisecond,
	}
}

// RetryStatus runs fn under the status schedule.
func (p Policy) RetryStatus(ctx context.Context, fn func() error) error {
	return Retry(ctx, p.StatusRetries+1, p.StatusDelay, fn)
}

// RetryNetwork runs fn under the transport schedule.
func (p Policy) RetryNetwork(ctx context.Context, fn func() error) error {
	return RetryDelays(ctx, p.NetworkDelays, fn)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
