package resilience

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/clock"
	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

// CircuitBreaker opens after Threshold consecutive failures and stays open
// for ResetAfter. Calls are bounded by Timeout.
type CircuitBreaker struct {
	failures    atomic.Int32
	lastFailure atomic.Int64
	threshold   int32
	timeout     time.Duration
	resetAfter  time.Duration
	name        string
	log         *logger.Logger
	clock       clock.Clock
	ignore      func(error) bool
}

type CircuitBreakerConfig struct {
	Threshold  int32
	Timeout    time.Duration
	ResetAfter time.Duration
	Name       string
	Logger     *logger.Logger
	Clock      clock.Clock
	// IgnoreError marks errors that should not count as failures.
	IgnoreError func(error) bool
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	if config.Clock == nil {
		config.Clock = clock.NewRealClock()
	}
	if config.Logger == nil {
		config.Logger = logger.NewNop()
	}
	if config.IgnoreError == nil {
		config.IgnoreError = func(err error) bool {
			return errors.Is(err, context.Canceled)
		}
	}
	return &CircuitBreaker{
		threshold:  config.Threshold,
		timeout:    config.Timeout,
		resetAfter: config.ResetAfter,
		name:       config.Name,
		log:        config.Logger,
		clock:      config.Clock,
		ignore:     config.IgnoreError,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	if cb.failures.Load() < cb.threshold {
		cb.setState(0)
		return false
	}

	last := cb.lastFailure.Load()
	if last == 0 {
		cb.setState(0)
		return false
	}

	if cb.clock.Now().Sub(time.Unix(0, last)) > cb.resetAfter {
		cb.reset()
		cb.setState(0)
		return false
	}

	cb.setState(1)
	return true
}

func (cb *CircuitBreaker) setState(state float64) {
	if cb.name != "" {
		metrics.CircuitBreakerState.WithLabelValues(cb.name).Set(state)
	}
}

func (cb *CircuitBreaker) recordFailure(err error) {
	cb.failures.Add(1)
	cb.lastFailure.Store(cb.clock.Now().UnixNano())
	if cb.name != "" {
		metrics.CircuitBreakerFailures.WithLabelValues(cb.name).Inc()
	}
	cb.log.Warnf("circuit breaker [%s]: failure recorded: %v", cb.name, err)
}

func (cb *CircuitBreaker) reset() {
	cb.failures.Store(0)
	cb.lastFailure.Store(0)
}

func (cb *CircuitBreaker) Call(ctx context.Context, fn func(context.Context) error) error {
	if cb.IsOpen() {
		cb.log.Warnf("circuit breaker [%s]: circuit is open, rejecting request", cb.name)
		return commonerrors.ErrCircuitOpen
	}

	callCtx := ctx
	if cb.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, cb.timeout)
		defer cancel()
	}

	if err := fn(callCtx); err != nil {
		if !cb.ignore(err) {
			cb.recordFailure(err)
		}
		return err
	}

	cb.reset()
	return nil
}
