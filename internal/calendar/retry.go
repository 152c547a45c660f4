package calendar

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// RetryConfig tunes the retry behavior of the calendar client.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration // delay before the second attempt
	MaxDelay    time.Duration // cap on the computed backoff
	JitterMax   time.Duration // random jitter added to each delay
}

// DefaultRetryConfig returns the standard bounded exponential backoff:
// 1s, 2s, 4s... plus up to 500ms jitter, capped at 10s, three attempts.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
		JitterMax:   500 * time.Millisecond,
	}
}

// FetchError is the terminal failure of a calendar fetch, carrying the
// classification the caller logs before degrading to an empty commitment list.
type FetchError struct {
	Category ErrorCategory
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("calendar fetch failed (%s after %d attempts): %v", e.Category, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RetryClient wraps a Gateway with bounded exponential-backoff retry and
// failure classification.
type RetryClient struct {
	gateway  Gateway
	cfg      RetryConfig
	observer Observer
}

// NewRetryClient creates a retrying calendar client. A nil observer is
// replaced with a no-op.
func NewRetryClient(gateway Gateway, cfg RetryConfig, observer Observer) *RetryClient {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultRetryConfig().MaxAttempts
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &RetryClient{gateway: gateway, cfg: cfg, observer: observer}
}

// FetchBusyIntervals retrieves the day's commitments, retrying transient
// failures. Non-retryable classifications abort immediately. The returned
// error is always a *FetchError; malformed individual events are skipped
// with a warning rather than failing the batch.
func (c *RetryClient) FetchBusyIntervals(ctx context.Context, calendarID string, start, end time.Time) ([]BusyInterval, error) {
	started := time.Now()

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		events, err := c.gateway.ListEvents(ctx, calendarID, start, end)
		if err == nil {
			intervals := ToBusyIntervals(events, c.observer)
			c.observer.OnFetchComplete(FetchEvent{
				CalendarID: calendarID,
				Attempts:   attempt,
				LatencyMs:  time.Since(started).Milliseconds(),
				Success:    true,
				EventCount: len(intervals),
			})
			return intervals, nil
		}
		lastErr = err

		category := Classify(err)
		if !category.Retryable() || attempt == c.cfg.MaxAttempts || ctx.Err() != nil {
			c.observer.OnFetchComplete(FetchEvent{
				CalendarID: calendarID,
				Attempts:   attempt,
				LatencyMs:  time.Since(started).Milliseconds(),
				Success:    false,
				Category:   category,
			})
			if category.Retryable() {
				lastErr = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
			}
			return nil, &FetchError{Category: category, Attempts: attempt, Err: lastErr}
		}

		if err := c.sleep(ctx, c.delay(attempt)); err != nil {
			return nil, &FetchError{Category: CategoryTimeout, Attempts: attempt, Err: err}
		}
	}
	// Unreachable: the loop always returns from its final attempt.
	return nil, &FetchError{Category: CategoryUnknown, Attempts: c.cfg.MaxAttempts, Err: lastErr}
}

// delay computes the backoff before the next attempt:
// min(base * 2^(attempt-1) + jitter, cap).
func (c *RetryClient) delay(attempt int) time.Duration {
	d := c.cfg.BaseDelay << (attempt - 1)
	if c.cfg.JitterMax > 0 {
		d += time.Duration(rand.Int63n(int64(c.cfg.JitterMax)))
	}
	if c.cfg.MaxDelay > 0 && d > c.cfg.MaxDelay {
		d = c.cfg.MaxDelay
	}
	return d
}

// sleep waits for d, aborting early when the request is cancelled. Retry
// delays must honor the caller's deadline.
func (c *RetryClient) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
