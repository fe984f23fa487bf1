package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks an error as transient. [Retry] only re-attempts
// operations whose error unwraps to this type; everything else is
// returned to the caller immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling delay between failed
// attempts. It returns nil on the first success, the error itself when
// it is not retryable, ctx.Err() on cancellation, and otherwise the
// last error seen.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error
	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.As(err, new(*RetryableError)) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}
