package calendar

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

// ErrorCategory classifies a calendar fetch failure for retry decisions and
// observability.
type ErrorCategory string

const (
	CategoryAuthExpired      ErrorCategory = "AUTH_EXPIRED"
	CategoryPermissionDenied ErrorCategory = "PERMISSION_DENIED"
	CategoryRateLimited      ErrorCategory = "RATE_LIMITED"
	CategoryServerError      ErrorCategory = "SERVER_ERROR"
	CategoryNetworkError     ErrorCategory = "NETWORK_ERROR"
	CategoryTimeout          ErrorCategory = "TIMEOUT"
	CategoryNotConfigured    ErrorCategory = "INTEGRATION_NOT_CONFIGURED"
	CategoryAPIError         ErrorCategory = "API_ERROR"
	CategoryUnknown          ErrorCategory = "UNKNOWN_ERROR"
)

// Retryable reports whether another attempt can reasonably succeed.
// Auth and permission failures need user action; API shape errors won't
// change on retry.
func (c ErrorCategory) Retryable() bool {
	switch c {
	case CategoryRateLimited, CategoryServerError, CategoryNetworkError, CategoryTimeout:
		return true
	}
	return false
}

// ErrNotConfigured indicates no calendar source is set up.
var ErrNotConfigured = errors.New("calendar integration not configured")

// ErrRetryExhausted indicates all retry attempts have been used up.
var ErrRetryExhausted = errors.New("calendar retry attempts exhausted")

// StatusError carries an HTTP status from a gateway so the retry client can
// classify it.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("calendar endpoint returned status %d", e.StatusCode)
}

// Classify maps an error to its retry category.
func Classify(err error) ErrorCategory {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNotConfigured) {
		return CategoryNotConfigured
	}
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return CategoryTimeout
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == 401:
			return CategoryAuthExpired
		case statusErr.StatusCode == 403:
			return CategoryPermissionDenied
		case statusErr.StatusCode == 429:
			return CategoryRateLimited
		case statusErr.StatusCode >= 500:
			return CategoryServerError
		case statusErr.StatusCode >= 400:
			return CategoryAPIError
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return CategoryTimeout
		}
		return CategoryNetworkError
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return CategoryNetworkError
	}

	return CategoryUnknown
}
