package weather

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// BreakerConfig configures the provider circuit breaker.
type BreakerConfig struct {
	// MaxRequests is the maximum number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state.
	Interval time.Duration

	// Timeout is the period of the open state.
	Timeout time.Duration

	// FailureThreshold is the consecutive-failure count that trips the breaker.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns conservative defaults: trip after 3
// consecutive failures, retry after 30 seconds.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 3,
	}
}

// BreakerProvider wraps a provider with a circuit breaker so a failing
// weather source cannot stall suggestion generation.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker[*domain.WeatherReading]
}

// NewBreakerProvider wraps the provider with a circuit breaker.
func NewBreakerProvider(inner Provider, config BreakerConfig, logger *slog.Logger) *BreakerProvider {
	if logger == nil {
		logger = slog.Default()
	}
	settings := gobreaker.Settings{
		Name:        "weather",
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}
	return &BreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[*domain.WeatherReading](settings),
	}
}

// Current fetches through the breaker. An open breaker surfaces as
// ErrUnavailable so callers degrade to weather-free suggestions.
func (p *BreakerProvider) Current(ctx context.Context, location string) (*domain.WeatherReading, error) {
	reading, err := p.breaker.Execute(func() (*domain.WeatherReading, error) {
		return p.inner.Current(ctx, location)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	return reading, nil
}
