package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday 2024-06-10 is a workday.
var monday = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

func mustInterval(t *testing.T, start, end time.Time) TimeInterval {
	t.Helper()
	iv, err := NewTimeInterval(start, end)
	require.NoError(t, err)
	return iv
}

func hoursPolicy(t *testing.T, startHour, endHour int) ActiveHoursPolicy {
	t.Helper()
	cfg, err := NewActiveHoursConfig(startHour, endHour)
	require.NoError(t, err)
	return NewActiveHoursPolicy(cfg, cfg)
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func TestSlotFinder_FindFreeSlots(t *testing.T) {
	finder := NewSlotFinder()

	t.Run("splits day around one busy event", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, at(monday, 12, 0), at(monday, 13, 0)),
		}

		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), busy, 60, hoursPolicy(t, 9, 18), nil)

		require.Len(t, slots, 2)
		assert.Equal(t, at(monday, 9, 0), slots[0].Start())
		assert.Equal(t, at(monday, 12, 0), slots[0].End())
		assert.Equal(t, 180, slots[0].DurationMinutes())
		assert.Equal(t, at(monday, 13, 0), slots[1].Start())
		assert.Equal(t, at(monday, 18, 0), slots[1].End())
		assert.Equal(t, 300, slots[1].DurationMinutes())
	})

	t.Run("back-to-back events covering the window yield nothing", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, at(monday, 8, 0), at(monday, 10, 0)),
			mustInterval(t, at(monday, 10, 0), at(monday, 12, 0)),
		}

		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), busy, 60, hoursPolicy(t, 8, 12), nil)

		assert.Empty(t, slots)
	})

	t.Run("gap shorter than minimum is excluded", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, at(monday, 9, 30), at(monday, 18, 0)),
		}

		// 09:00-09:30 gap is exactly 30 minutes, below the 60 minute floor.
		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), busy, 60, hoursPolicy(t, 9, 18), nil)

		assert.Empty(t, slots)
	})

	t.Run("gap equal to minimum is included", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, at(monday, 10, 0), at(monday, 18, 0)),
		}

		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), busy, 60, hoursPolicy(t, 9, 18), nil)

		require.Len(t, slots, 1)
		assert.Equal(t, 60, slots[0].DurationMinutes())
	})

	t.Run("empty busy list yields the whole active window", func(t *testing.T) {
		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), nil, 60, hoursPolicy(t, 9, 18), nil)

		require.Len(t, slots, 1)
		assert.Equal(t, at(monday, 9, 0), slots[0].Start())
		assert.Equal(t, at(monday, 18, 0), slots[0].End())
	})

	t.Run("nested and overlapping events never move the cursor backwards", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, at(monday, 10, 0), at(monday, 14, 0)),
			mustInterval(t, at(monday, 11, 0), at(monday, 12, 0)),
			mustInterval(t, at(monday, 13, 0), at(monday, 15, 0)),
		}

		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), busy, 60, hoursPolicy(t, 9, 18), nil)

		require.Len(t, slots, 2)
		assert.Equal(t, at(monday, 9, 0), slots[0].Start())
		assert.Equal(t, at(monday, 10, 0), slots[0].End())
		assert.Equal(t, at(monday, 15, 0), slots[1].Start())
		assert.Equal(t, at(monday, 18, 0), slots[1].End())
	})

	t.Run("events outside the active window are ignored", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, at(monday, 5, 0), at(monday, 7, 0)),
			mustInterval(t, at(monday, 20, 0), at(monday, 22, 0)),
		}

		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), busy, 60, hoursPolicy(t, 9, 18), nil)

		require.Len(t, slots, 1)
		assert.Equal(t, at(monday, 9, 0), slots[0].Start())
		assert.Equal(t, at(monday, 18, 0), slots[0].End())
	})

	t.Run("event straddling the window start is clipped", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, at(monday, 7, 0), at(monday, 10, 0)),
		}

		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), busy, 60, hoursPolicy(t, 9, 18), nil)

		require.Len(t, slots, 1)
		assert.Equal(t, at(monday, 10, 0), slots[0].Start())
		assert.Equal(t, at(monday, 18, 0), slots[0].End())
	})

	t.Run("partial first day clamps to range start", func(t *testing.T) {
		rangeStart := at(monday, 11, 0)

		slots := finder.FindFreeSlots(rangeStart, at(monday, 23, 59), nil, 60, hoursPolicy(t, 9, 18), nil)

		require.Len(t, slots, 1)
		assert.Equal(t, at(monday, 11, 0), slots[0].Start())
		assert.Equal(t, at(monday, 18, 0), slots[0].End())
	})

	t.Run("range ending before the window opens contributes nothing", func(t *testing.T) {
		slots := finder.FindFreeSlots(monday, at(monday, 8, 0), nil, 60, hoursPolicy(t, 9, 18), nil)
		assert.Empty(t, slots)
	})

	t.Run("multi-day scan honours per-day windows", func(t *testing.T) {
		// Friday 2024-06-07 through Sunday 2024-06-09: Friday is a workday,
		// Saturday and Sunday resolve to the rest-day window.
		friday := time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC)
		sunday := friday.AddDate(0, 0, 2)
		policy := DefaultActiveHoursPolicy()

		slots := finder.FindFreeSlots(friday, at(sunday, 23, 59), nil, 60, policy, nil)

		require.Len(t, slots, 3)
		assert.Equal(t, at(friday, 8, 0), slots[0].Start())
		assert.Equal(t, at(friday, 20, 0), slots[0].End())
		assert.Equal(t, at(friday.AddDate(0, 0, 1), 10, 0), slots[1].Start())
		assert.Equal(t, at(friday.AddDate(0, 0, 1), 22, 0), slots[1].End())
		assert.Equal(t, at(sunday, 10, 0), slots[2].Start())
		assert.Equal(t, at(sunday, 22, 0), slots[2].End())
	})

	t.Run("holiday set switches a weekday to rest-day hours", func(t *testing.T) {
		policy := DefaultActiveHoursPolicy()
		holidays := NewRestDays(monday)

		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), nil, 60, policy, holidays)

		require.Len(t, slots, 1)
		assert.Equal(t, at(monday, 10, 0), slots[0].Start())
		assert.Equal(t, at(monday, 22, 0), slots[0].End())
	})
}

func TestSlotFinder_Properties(t *testing.T) {
	finder := NewSlotFinder()
	policy := hoursPolicy(t, 9, 18)

	t.Run("busy intervals covering the whole window leave no slots", func(t *testing.T) {
		// Partition 09:00-18:00 into adjacent events of varying width.
		widths := []int{15, 45, 60, 120, 90, 30, 60, 120} // minutes, sums to 540
		busy := make([]TimeInterval, 0, len(widths))
		cursor := at(monday, 9, 0)
		for _, w := range widths {
			next := cursor.Add(time.Duration(w) * time.Minute)
			busy = append(busy, mustInterval(t, cursor, next))
			cursor = next
		}
		require.Equal(t, at(monday, 18, 0), cursor)

		for _, minimum := range []int{1, 15, 60} {
			slots := finder.FindFreeSlots(monday, at(monday, 23, 59), busy, minimum, policy, nil)
			assert.Empty(t, slots)
		}
	})

	t.Run("slots are disjoint, ordered, long enough, and inside the window", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, at(monday, 10, 15), at(monday, 10, 45)),
			mustInterval(t, at(monday, 13, 0), at(monday, 13, 10)),
			mustInterval(t, at(monday, 16, 0), at(monday, 17, 30)),
			mustInterval(t, at(monday, 16, 30), at(monday, 16, 45)), // nested
		}
		minimum := 30

		slots := finder.FindFreeSlots(monday, at(monday, 23, 59), busy, minimum, policy, nil)

		require.NotEmpty(t, slots)
		windowStart, windowEnd := at(monday, 9, 0), at(monday, 18, 0)
		for i, slot := range slots {
			assert.GreaterOrEqual(t, slot.DurationMinutes(), minimum)
			assert.False(t, slot.Start().Before(windowStart))
			assert.False(t, slot.End().After(windowEnd))
			if i > 0 {
				assert.False(t, slot.Start().Before(slots[i-1].End()))
			}
			for _, event := range busy {
				assert.False(t, slot.Interval().Overlaps(event))
			}
		}
	})

	t.Run("unsorted input produces the same slots as sorted input", func(t *testing.T) {
		sorted := []TimeInterval{
			mustInterval(t, at(monday, 10, 0), at(monday, 11, 0)),
			mustInterval(t, at(monday, 13, 0), at(monday, 14, 0)),
			mustInterval(t, at(monday, 15, 0), at(monday, 16, 0)),
		}
		shuffled := []TimeInterval{sorted[2], sorted[0], sorted[1]}

		a := finder.FindFreeSlots(monday, at(monday, 23, 59), sorted, 30, policy, nil)
		b := finder.FindFreeSlots(monday, at(monday, 23, 59), shuffled, 30, policy, nil)

		assert.Equal(t, a, b)
	})
}
