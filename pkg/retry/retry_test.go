package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig(maxRetries int) *Config {
	return &Config{
		MaxRetries:    maxRetries,
		BackoffFactor: 2.0,
		InitialDelay:  time.Millisecond,
		MaxDelay:      50 * time.Millisecond,
		Jitter:        time.Millisecond,
	}
}

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	ctx := context.Background()
	retrier := NewRetrier(fastConfig(3))

	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 1 {
		t.Errorf("expected 1 attempt, got %d", counter)
	}
}

func TestRetry_SuccessAfterExactlyMaxFailures(t *testing.T) {
	ctx := context.Background()
	const maxRetries = 3
	retrier := NewRetrier(fastConfig(maxRetries))

	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		if counter <= maxRetries {
			return errors.New("temporary error")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != maxRetries+1 {
		t.Errorf("expected %d attempts, got %d", maxRetries+1, counter)
	}
}

func TestRetry_MaxRetriesExceeded(t *testing.T) {
	ctx := context.Background()
	retrier := NewRetrier(fastConfig(2))

	expectedErr := errors.New("permanent error")
	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		return expectedErr
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected final error unchanged, got %v", err)
	}
	if counter != 3 { // Initial try + 2 retries
		t.Errorf("expected 3 attempts, got %d", counter)
	}
}

func TestRetry_OnRetryObservesEveryBackoff(t *testing.T) {
	ctx := context.Background()
	cfg := fastConfig(2)

	var attempts []int
	var seen []error
	cfg.OnRetry = func(attempt int, err error) {
		attempts = append(attempts, attempt)
		seen = append(seen, err)
	}
	retrier := NewRetrier(cfg)

	failure := errors.New("boom")
	_ = retrier.Do(ctx, func() error { return failure })

	if len(attempts) != 2 {
		t.Fatalf("expected 2 retry records, got %d", len(attempts))
	}
	for i, a := range attempts {
		if a != i+1 {
			t.Errorf("expected attempt %d, got %d", i+1, a)
		}
		if !errors.Is(seen[i], failure) {
			t.Errorf("record %d carries wrong error: %v", i, seen[i])
		}
	}
}

func TestRetry_BackoffGrowsByFactor(t *testing.T) {
	ctx := context.Background()
	cfg := &Config{
		MaxRetries:    2,
		BackoffFactor: 2.0,
		InitialDelay:  40 * time.Millisecond,
		MaxDelay:      time.Second,
		Jitter:        time.Millisecond,
	}
	retrier := NewRetrier(cfg)

	start := time.Now()
	counter := 0
	_ = retrier.Do(ctx, func() error {
		counter++
		return errors.New("error")
	})
	elapsed := time.Since(start)

	// Two waits: 40ms then 80ms, plus up to 1ms jitter each.
	minExpected := 120 * time.Millisecond
	maxExpected := 200 * time.Millisecond
	if elapsed < minExpected || elapsed > maxExpected {
		t.Errorf("expected total delay between %v and %v, got %v", minExpected, maxExpected, elapsed)
	}
	if counter != 3 {
		t.Errorf("expected 3 attempts, got %d", counter)
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	retrier := NewRetrier(fastConfig(5))

	err := retrier.Do(ctx, func() error {
		cancel()
		return errors.New("operation error after cancel")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
