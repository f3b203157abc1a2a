package domain

import "time"

// FreeSlot is a gap in the schedule long enough to meet the caller's
// minimum duration. Slots are produced only by the SlotFinder and never
// mutated afterwards.
type FreeSlot struct {
	interval        TimeInterval
	durationMinutes int
}

func newFreeSlot(interval TimeInterval) FreeSlot {
	return FreeSlot{
		interval:        interval,
		durationMinutes: interval.Minutes(),
	}
}

// RehydrateFreeSlot recreates a slot from persisted or transported state.
func RehydrateFreeSlot(start, end time.Time) (FreeSlot, error) {
	interval, err := NewTimeInterval(start, end)
	if err != nil {
		return FreeSlot{}, err
	}
	return newFreeSlot(interval), nil
}

func (s FreeSlot) Start() time.Time       { return s.interval.Start() }
func (s FreeSlot) End() time.Time         { return s.interval.End() }
func (s FreeSlot) Interval() TimeInterval { return s.interval }

// DurationMinutes returns the slot length in whole minutes.
func (s FreeSlot) DurationMinutes() int { return s.durationMinutes }

// StartHour returns the clock hour the slot begins at.
func (s FreeSlot) StartHour() int { return s.interval.Start().Hour() }
