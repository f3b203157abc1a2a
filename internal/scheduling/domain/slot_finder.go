package domain

import (
	"sort"
	"time"
)

// SlotFinder extracts free slots from a range of busy calendar intervals,
// bounded per day by an active-hours policy.
type SlotFinder struct{}

// NewSlotFinder creates a slot finder.
func NewSlotFinder() *SlotFinder {
	return &SlotFinder{}
}

// FindFreeSlots scans day by day from rangeStart to rangeEnd and returns the
// gaps between busy intervals that are at least minimumMinutes long. The scan
// is per-day rather than one global sweep because the active window differs
// per calendar day (workday vs rest day).
func (f *SlotFinder) FindFreeSlots(
	rangeStart, rangeEnd time.Time,
	busy []TimeInterval,
	minimumMinutes int,
	policy ActiveHoursPolicy,
	restDays RestDays,
) []FreeSlot {
	slots := make([]FreeSlot, 0)
	if !rangeEnd.After(rangeStart) {
		return slots
	}

	finalDay := dateOnly(rangeEnd)
	for day := dateOnly(rangeStart); !day.After(finalDay); day = day.AddDate(0, 0, 1) {
		config := policy.Resolve(day, restDays)
		windowStart, windowEnd := config.WindowFor(day)

		// Clamp the day window to the requested range. Partial first and
		// last days can leave an empty window; those days contribute nothing.
		dayStart := maxTime(windowStart, rangeStart)
		dayEnd := minTime(windowEnd, rangeEnd)
		if !dayStart.Before(dayEnd) {
			continue
		}

		slots = append(slots, f.sweepDay(dayStart, dayEnd, busy, minimumMinutes)...)
	}

	return slots
}

// sweepDay walks the day's overlapping events in start order, emitting each
// qualifying gap between the cursor and the next event.
func (f *SlotFinder) sweepDay(dayStart, dayEnd time.Time, busy []TimeInterval, minimumMinutes int) []FreeSlot {
	overlapping := make([]TimeInterval, 0, len(busy))
	for _, event := range busy {
		if event.Start().Before(dayEnd) && event.End().After(dayStart) {
			overlapping = append(overlapping, event)
		}
	}
	// Stable sort keeps the original order for events sharing a start time.
	sort.SliceStable(overlapping, func(i, j int) bool {
		return overlapping[i].Start().Before(overlapping[j].Start())
	})

	slots := make([]FreeSlot, 0)
	cursor := dayStart

	for _, event := range overlapping {
		eventStart := maxTime(event.Start(), dayStart)
		eventEnd := minTime(event.End(), dayEnd)

		if eventStart.After(cursor) {
			if slot, ok := f.gap(cursor, eventStart, minimumMinutes); ok {
				slots = append(slots, slot)
			}
		}

		// The cursor only moves forward; nested and overlapping events
		// cannot drag it back into an already-covered span.
		cursor = maxTime(cursor, eventEnd)
	}

	if dayEnd.After(cursor) {
		if slot, ok := f.gap(cursor, dayEnd, minimumMinutes); ok {
			slots = append(slots, slot)
		}
	}

	return slots
}

func (f *SlotFinder) gap(start, end time.Time, minimumMinutes int) (FreeSlot, bool) {
	interval, err := NewTimeInterval(start, end)
	if err != nil {
		return FreeSlot{}, false
	}
	if interval.Minutes() < minimumMinutes {
		return FreeSlot{}, false
	}
	return newFreeSlot(interval), true
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
