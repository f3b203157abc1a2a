// Package weather supplies the current weather reading the suggestion
// engine weighs with. Providers are composable: a static or external
// source can be wrapped with a Redis cache and a circuit breaker.
package weather

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

// ErrUnavailable signals that no reading could be obtained. Callers treat
// it as "suggest without weather", never as a hard failure.
var ErrUnavailable = errors.New("weather unavailable")

// Provider fetches the current reading for a location.
type Provider interface {
	Current(ctx context.Context, location string) (*domain.WeatherReading, error)
}

// StaticProvider returns a fixed reading regardless of location. It backs
// the CLI's --condition/--temp flags and tests.
type StaticProvider struct {
	reading domain.WeatherReading
}

// NewStaticProvider creates a provider pinned to one reading.
func NewStaticProvider(condition string, temperatureCelsius float64) *StaticProvider {
	return &StaticProvider{reading: domain.ReadingForCondition(condition, temperatureCelsius)}
}

// Current returns the pinned reading.
func (p *StaticProvider) Current(ctx context.Context, location string) (*domain.WeatherReading, error) {
	reading := p.reading
	return &reading, nil
}

// NoneProvider always reports weather unavailable, for running without any
// weather source configured.
type NoneProvider struct{}

// Current always returns ErrUnavailable.
func (NoneProvider) Current(ctx context.Context, location string) (*domain.WeatherReading, error) {
	return nil, ErrUnavailable
}
