// Package rediscache caches weather readings in Redis so repeated
// suggestion runs within the hour do not hammer the weather source.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/serendip/internal/suggestions/domain"
	"github.com/felixgeelhaar/serendip/internal/weather"
)

// DefaultTTL is how long a reading stays fresh. Weather does not move
// faster than the hour for suggestion purposes.
const DefaultTTL = time.Hour

const keyPrefix = "serendip:weather:"

// CachedProvider wraps a provider with a Redis read-through cache keyed by
// location.
type CachedProvider struct {
	inner  weather.Provider
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedProvider wraps the provider with a Redis cache. A zero ttl uses
// DefaultTTL.
func NewCachedProvider(inner weather.Provider, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedProvider{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Current returns the cached reading when fresh, otherwise fetches and
// caches. Cache failures degrade to a direct fetch, never to an error.
func (p *CachedProvider) Current(ctx context.Context, location string) (*domain.WeatherReading, error) {
	key := keyPrefix + location

	raw, err := p.client.Get(ctx, key).Bytes()
	if err == nil {
		var reading domain.WeatherReading
		if err := json.Unmarshal(raw, &reading); err == nil {
			return &reading, nil
		}
		p.logger.Warn("discarding corrupt cached weather reading", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		p.logger.Warn("weather cache read failed", "key", key, "error", err)
	}

	reading, err := p.inner.Current(ctx, location)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(reading); err == nil {
		if err := p.client.Set(ctx, key, payload, p.ttl).Err(); err != nil {
			p.logger.Warn("weather cache write failed", "key", key, "error", err)
		}
	}
	return reading, nil
}

// NewClient creates a Redis client from a URL like redis://host:6379/0.
func NewClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}
