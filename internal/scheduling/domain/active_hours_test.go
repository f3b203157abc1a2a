package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActiveHoursConfig(t *testing.T) {
	t.Run("accepts valid window", func(t *testing.T) {
		cfg, err := NewActiveHoursConfig(9, 18)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.StartHour())
		assert.Equal(t, 18, cfg.EndHour())
	})

	t.Run("accepts full day", func(t *testing.T) {
		_, err := NewActiveHoursConfig(0, 24)
		require.NoError(t, err)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		_, err := NewActiveHoursConfig(18, 9)
		assert.ErrorIs(t, err, ErrInvalidActiveHours)
	})

	t.Run("rejects equal start and end", func(t *testing.T) {
		_, err := NewActiveHoursConfig(9, 9)
		assert.ErrorIs(t, err, ErrInvalidActiveHours)
	})

	t.Run("rejects out of range hours", func(t *testing.T) {
		_, err := NewActiveHoursConfig(-1, 18)
		assert.ErrorIs(t, err, ErrActiveHoursRange)
		_, err = NewActiveHoursConfig(9, 25)
		assert.ErrorIs(t, err, ErrActiveHoursRange)
	})
}

func TestActiveHoursConfig_WindowFor(t *testing.T) {
	cfg, err := NewActiveHoursConfig(9, 18)
	require.NoError(t, err)

	date := time.Date(2024, time.June, 10, 14, 37, 12, 0, time.UTC)
	start, end := cfg.WindowFor(date)

	assert.Equal(t, time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.June, 10, 18, 0, 0, 0, time.UTC), end)
}

func TestActiveHoursPolicy_Resolve(t *testing.T) {
	policy := DefaultActiveHoursPolicy()

	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)

	t.Run("workday window on weekdays", func(t *testing.T) {
		assert.Equal(t, policy.Workday(), policy.Resolve(monday, nil))
	})

	t.Run("rest-day window on weekends", func(t *testing.T) {
		assert.Equal(t, policy.RestDay(), policy.Resolve(saturday, nil))
		assert.Equal(t, policy.RestDay(), policy.Resolve(sunday, nil))
	})

	t.Run("rest-day window on holidays", func(t *testing.T) {
		holidays := NewRestDays(monday)
		assert.Equal(t, policy.RestDay(), policy.Resolve(monday, holidays))
	})

	t.Run("holiday match ignores time of day", func(t *testing.T) {
		holidays := NewRestDays(monday.Add(15 * time.Hour))
		assert.Equal(t, policy.RestDay(), policy.Resolve(monday.Add(3*time.Hour), holidays))
	})
}

func TestRestDays_Merge(t *testing.T) {
	a := NewRestDays(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	b := NewRestDays(time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC))

	merged := a.Merge(b)
	assert.Len(t, merged, 2)
	assert.True(t, merged.Contains(time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)))
	assert.True(t, merged.Contains(time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)))
}
