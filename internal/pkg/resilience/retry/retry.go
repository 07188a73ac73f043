// Package retry runs operations under an exponential backoff policy built on
// avast/retry-go.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(200*time.Millisecond))
//	err := r.Execute(ctx, func() error {
//	    return storage.SaveLastIrreversible(ctx, blockNum)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out or ctx
// is done.
type Retry interface {
	// Execute calls operation at least once. It returns nil on the first
	// success, otherwise the error of the last attempt (or ctx's error).
	// operation must be safe to repeat.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is notified of every failed attempt. attempt is zero-based.
type OnRetryFunc func(attempt uint, err error)

type config struct {
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
	onRetry  OnRetryFunc
}

// Option configures a Retry.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with 3 attempts, a 1s base delay doubling up to 5s,
// adjusted by opts.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the wait before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithOnRetry registers fn, typically to log the failed attempt.
func WithOnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
