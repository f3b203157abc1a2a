package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidInterval = errors.New("interval end must be after start")
)

// TimeInterval is an immutable span of absolute time with Start < End.
// It is used both for busy calendar events and for free gaps.
type TimeInterval struct {
	start time.Time
	end   time.Time
}

// NewTimeInterval creates a time interval. Malformed spans (end not after
// start) are rejected here so the sweep never sees them.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !end.After(start) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{start: start, end: end}, nil
}

func (iv TimeInterval) Start() time.Time { return iv.start }
func (iv TimeInterval) End() time.Time   { return iv.end }

// Duration returns the interval length.
func (iv TimeInterval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Minutes returns the interval length in whole minutes, rounding down.
func (iv TimeInterval) Minutes() int {
	return int(iv.end.Sub(iv.start).Seconds() / 60)
}

// Overlaps checks if this interval overlaps another.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.start.Before(other.end) && iv.end.After(other.start)
}

// IsZero reports whether the interval is the zero value.
func (iv TimeInterval) IsZero() bool {
	return iv.start.IsZero() && iv.end.IsZero()
}
