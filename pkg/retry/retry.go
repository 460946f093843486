package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/sandevgo/trackmate/pkg/log"
)

type Operation = func() error

type Config struct {
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration

	// OnRetry is invoked before each backoff wait with the attempt
	// number (1-based) and the error that triggered it. Observability
	// only; it cannot alter the retry decision.
	OnRetry func(attempt int, err error)
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:    3,
		BackoffFactor: 2.0,
		InitialDelay:  2 * time.Second,
		MaxDelay:      30 * time.Second,
		Jitter:        50 * time.Millisecond,
	}
}

type Retrier struct {
	config *Config
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

// Do runs op, retrying on any error with exponential backoff until the
// retry ceiling is reached. The final error is returned unchanged.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	logger := log.FromCtx(ctx)

	var err error
	delay := r.config.InitialDelay
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		if attempt == r.config.MaxRetries {
			logger.Warn().Err(err).Int("attempts", attempt+1).Msg("retries exhausted")
			return err
		}

		logger.Debug().Err(err).
			Int("attempt", attempt+1).
			Int("max_retries", r.config.MaxRetries).
			Msg("retrying after error")

		if r.config.OnRetry != nil {
			r.config.OnRetry(attempt+1, err)
		}

		jitter := time.Duration(rnd.Float64() * float64(r.config.Jitter))
		nextDelay := delay + jitter
		if nextDelay > r.config.MaxDelay {
			nextDelay = r.config.MaxDelay + jitter
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(nextDelay):
		}

		delay = time.Duration(float64(delay) * r.config.BackoffFactor)
		if delay > r.config.MaxDelay {
			delay = r.config.MaxDelay
		}
	}
	return err
}
