package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/playsort/pkg/domain"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = domain.ErrNotFound

// errCritical is passed to repeater as a termination error, criticalError matches it
var errCritical = errors.New("critical")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is makes errors.Is(err, errCritical) true, so repeater stops on the first critical failure
func (e *criticalError) Is(target error) bool {
	return target == errCritical //nolint:errorlint // sentinel identity
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// withRetry runs a write operation, retrying it with backoff while SQLite reports lock errors.
// fn should return lock errors as is and wrap anything else in criticalError, which is returned
// after the first attempt.
func withRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, fn, errCritical)
}

// classify turns a failed statement into a retryable or critical error
func classify(err error, msg string) error {
	if isLockError(err) {
		return err // retry
	}
	return &criticalError{err: fmt.Errorf("%s: %w", msg, err)}
}
