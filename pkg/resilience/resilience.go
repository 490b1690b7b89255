// Package resilience runs remote calls behind a timeout and a circuit breaker
// and substitutes a fallback value when they fail.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-reservation/pkg/utils"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// errCallerGone marks a call abandoned because the caller's own context ended.
// It does not count against the collaborator's breaker.
var errCallerGone = errors.New("caller gone")

// Policy bounds a single collaborator.
type Policy struct {
	Timeout          time.Duration
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

func PolicyFromConfig(cfg utils.ResilienceConfig) Policy {
	return Policy{
		Timeout:          cfg.Timeout,
		FailureThreshold: cfg.FailureThreshold,
		OpenTimeout:      cfg.OpenTimeout,
	}
}

func (p Policy) withDefaults() Policy {
	if p.Timeout <= 0 {
		p.Timeout = 2 * time.Second
	}
	if p.FailureThreshold == 0 {
		p.FailureThreshold = 5
	}
	if p.OpenTimeout <= 0 {
		p.OpenTimeout = 5 * time.Second
	}
	return p
}

// Guard owns the breaker of one collaborator. It is safe for concurrent use.
type Guard struct {
	name    string
	policy  Policy
	breaker *gobreaker.CircuitBreaker
	tracer  trace.Tracer
	log     *zap.Logger
}

func NewGuard(name string, policy Policy, log *zap.Logger) *Guard {
	policy = policy.withDefaults()
	log = log.With(zap.String("collaborator", name))

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     policy.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= policy.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCallerGone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Guard{
		name:    name,
		policy:  policy,
		breaker: breaker,
		tracer:  otel.Tracer("hotel-reservation/resilience"),
		log:     log,
	}
}

func (g *Guard) Name() string { return g.name }

// State reports the breaker state ("closed", "open" or "half-open").
func (g *Guard) State() string { return g.breaker.State().String() }

type outcome[T any] struct {
	value T
	err   error
}

// CallWithFallback runs primary under the guard's timeout and breaker. Any
// failure, including an open breaker or a primary still running at the
// deadline, is logged and replaced by fallback(err); it never reaches the
// caller. A late primary is left to finish on its own and its result dropped.
func CallWithFallback[T any](ctx context.Context, g *Guard, primary func(ctx context.Context) (T, error), fallback func(err error) T) T {
	ctx, span := g.tracer.Start(ctx, g.name,
		trace.WithAttributes(attribute.String("collaborator", g.name)))
	defer span.End()

	start := time.Now()
	result, err := g.breaker.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.policy.Timeout)
		defer cancel()

		done := make(chan outcome[T], 1)
		go func() {
			value, err := primary(callCtx)
			done <- outcome[T]{value: value, err: err}
		}()

		var out outcome[T]
		select {
		case out = <-done:
			if out.err == nil && callCtx.Err() != nil {
				out.err = callCtx.Err()
			}
		case <-callCtx.Done():
			out.err = callCtx.Err()
		}

		if out.err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %w", errCallerGone, out.err)
			}
			return nil, out.err
		}
		return out.value, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.AddEvent("fallback", trace.WithAttributes(
			attribute.Bool("breaker_open", errors.Is(err, gobreaker.ErrOpenState)),
		))
		g.log.Warn("Remote call failed, using fallback",
			zap.Error(err),
			zap.String("breaker", g.State()),
			zap.Duration("elapsed", time.Since(start)))
		return fallback(err)
	}

	span.SetStatus(codes.Ok, "")
	value, _ := result.(T)
	return value
}
