package scraperapi

import (
	"context"
	"log"
	"time"
)

// RetryPolicy controls the attempt budget and exponential backoff curve for
// provider requests. What counts as retryable is decided per call site:
// searches retry rate limiting only, detail fetches also retry transport
// failures.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy matches the provider's rate-limit guidance: 3 attempts,
// 2s base delay doubling per attempt, capped at 30s
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		MaxDelay:    30 * time.Second,
	}
}

// Backoff returns the delay before the next attempt. Delays double starting
// from BaseDelay and never exceed MaxDelay.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := p.BaseDelay << (attempt - 1)
	if delay <= 0 || delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

// Do runs fn up to MaxAttempts times, sleeping with exponential backoff
// between attempts. Non-retryable errors fail immediately. Context
// cancellation aborts the wait.
func (p RetryPolicy) Do(ctx context.Context, label string, retryable func(error) bool, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) || attempt == p.MaxAttempts {
			return err
		}

		delay := p.Backoff(attempt)
		log.Printf("[SCRAPER] %s attempt %d/%d failed, retrying in %s: %v",
			label, attempt, p.MaxAttempts, delay, err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
