// Package calendar supplies busy intervals and rest days to the slot
// finder. The CalDAV subpackage reads a real calendar server; the static
// source here serves tests and manual input.
package calendar

import (
	"context"
	"time"

	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
)

// StaticSource serves a fixed set of busy intervals and rest days.
type StaticSource struct {
	busy     []schedulingDomain.TimeInterval
	restDays schedulingDomain.RestDays
}

// NewStaticSource creates a source over fixed data. A nil restDays is
// treated as empty.
func NewStaticSource(busy []schedulingDomain.TimeInterval, restDays schedulingDomain.RestDays) *StaticSource {
	if restDays == nil {
		restDays = schedulingDomain.RestDays{}
	}
	return &StaticSource{busy: busy, restDays: restDays}
}

// BusyIntervals returns the fixed intervals overlapping the range.
func (s *StaticSource) BusyIntervals(ctx context.Context, start, end time.Time) ([]schedulingDomain.TimeInterval, error) {
	window, err := schedulingDomain.NewTimeInterval(start, end)
	if err != nil {
		return nil, err
	}
	var out []schedulingDomain.TimeInterval
	for _, iv := range s.busy {
		if iv.Overlaps(window) {
			out = append(out, iv)
		}
	}
	return out, nil
}

// RestDayDates returns the configured rest days falling inside the range.
func (s *StaticSource) RestDayDates(ctx context.Context, start, end time.Time) (schedulingDomain.RestDays, error) {
	out := schedulingDomain.RestDays{}
	for d := range s.restDays {
		if !d.Before(truncateToDay(start)) && !d.After(end) {
			out.Add(d)
		}
	}
	return out, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
