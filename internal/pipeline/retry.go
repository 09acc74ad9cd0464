package pipeline

import "time"

// RetryPolicy controls re-attempts of a failed stage. The zero value (and
// NoRetries) preserves the single-attempt behavior: a failed stage halts the
// pipeline immediately.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts per stage, including the
	// first. Values below 1 are treated as 1.
	MaxAttempts int

	// Backoff returns the wait before the given re-attempt (1-based). A nil
	// Backoff retries immediately.
	Backoff func(attempt int) time.Duration
}

// NoRetries is the default policy: one attempt per stage.
func NoRetries() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1}
}

// FixedBackoff builds a policy with a constant delay between attempts.
func FixedBackoff(maxAttempts int, delay time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     func(int) time.Duration { return delay },
	}
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	if p.Backoff == nil {
		return 0
	}
	return p.Backoff(attempt)
}
