package esplora

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/clock"
	"go.uber.org/zap"
)

const (
	defaultMaxAttempts = 7
	defaultBaseBackoff = time.Second
)

// Decision tells the retrier what to do with a failed call.
type Decision uint8

const (
	// DecisionFail returns the error to the caller.
	DecisionFail Decision = iota
	// DecisionRetryRateLimited backs off and repeats the call.
	DecisionRetryRateLimited
)

func (d Decision) String() string {
	switch d {
	case DecisionRetryRateLimited:
		return "retry_rate_limited"
	default:
		return "fail"
	}
}

// Classify maps a call error to a retry decision. Only HTTP 429 is retried.
func Classify(err error) Decision {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status == http.StatusTooManyRequests {
		return DecisionRetryRateLimited
	}
	return DecisionFail
}

// Retrier repeats rate-limited calls with exponential backoff.
type Retrier struct {
	logger      *zap.Logger
	metrics     RetryMetrics
	sleep       clock.SleepFunc
	maxAttempts int
	baseBackoff time.Duration
}

// NewRetrier builds a Retrier allowing 7 tries per call, waiting 1s, 2s, 4s ... between them.
func NewRetrier(logger *zap.Logger, metrics RetryMetrics) *Retrier {
	return &Retrier{
		logger:      logger.Named("retrier"),
		metrics:     metrics,
		sleep:       clock.SleepWithContext,
		maxAttempts: defaultMaxAttempts,
		baseBackoff: defaultBaseBackoff,
	}
}

// Do runs call until it succeeds, fails with an error Classify does not retry, or the
// attempt budget is spent. In the last case the most recent rate-limit error is returned.
func Do[T any](ctx context.Context, r *Retrier, operation string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		res, err := call(ctx)
		if err == nil {
			return res, nil
		}
		if Classify(err) != DecisionRetryRateLimited {
			return zero, err
		}
		if attempt+1 >= r.maxAttempts {
			r.logger.Warn("rate limit retries exhausted",
				zap.String("operation", operation),
				zap.Int("attempts", attempt+1),
				zap.Error(err))
			return zero, err
		}

		wait := clock.Exponential(r.baseBackoff, attempt)
		if r.metrics != nil {
			r.metrics.ObserveRateLimited(operation, wait)
		}
		r.logger.Debug("rate limited, backing off",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Duration("sleep", wait))
		if err := r.sleep(ctx, wait); err != nil {
			return zero, err
		}
	}
}
