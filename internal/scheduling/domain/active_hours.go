package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidActiveHours = errors.New("active hours end must be after start")
	ErrActiveHoursRange   = errors.New("active hours must lie within a single day")
)

// ActiveHoursConfig bounds the clock hours of a day during which free time
// is considered eligible.
type ActiveHoursConfig struct {
	startHour int
	endHour   int
}

// NewActiveHoursConfig validates and creates an active-hours window.
// startHour is in [0,23], endHour in [1,24], and startHour < endHour.
func NewActiveHoursConfig(startHour, endHour int) (ActiveHoursConfig, error) {
	if startHour < 0 || startHour > 23 || endHour < 1 || endHour > 24 {
		return ActiveHoursConfig{}, ErrActiveHoursRange
	}
	if startHour >= endHour {
		return ActiveHoursConfig{}, ErrInvalidActiveHours
	}
	return ActiveHoursConfig{startHour: startHour, endHour: endHour}, nil
}

func (c ActiveHoursConfig) StartHour() int { return c.startHour }
func (c ActiveHoursConfig) EndHour() int   { return c.endHour }

// WindowFor anchors the config to the given calendar date and returns the
// absolute start and end of the day's active window.
func (c ActiveHoursConfig) WindowFor(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, c.startHour, 0, 0, 0, date.Location())
	end := time.Date(y, m, d, c.endHour, 0, 0, 0, date.Location())
	return start, end
}

// DefaultWorkdayHours is the 08:00-20:00 workday window.
func DefaultWorkdayHours() ActiveHoursConfig {
	return ActiveHoursConfig{startHour: 8, endHour: 20}
}

// DefaultRestDayHours is the 10:00-22:00 rest-day window.
func DefaultRestDayHours() ActiveHoursConfig {
	return ActiveHoursConfig{startHour: 10, endHour: 22}
}

// ActiveHoursPolicy holds one window per day type.
type ActiveHoursPolicy struct {
	workday ActiveHoursConfig
	restDay ActiveHoursConfig
}

// NewActiveHoursPolicy creates a policy from workday and rest-day windows.
func NewActiveHoursPolicy(workday, restDay ActiveHoursConfig) ActiveHoursPolicy {
	return ActiveHoursPolicy{workday: workday, restDay: restDay}
}

// DefaultActiveHoursPolicy returns the default workday/rest-day windows.
func DefaultActiveHoursPolicy() ActiveHoursPolicy {
	return ActiveHoursPolicy{
		workday: DefaultWorkdayHours(),
		restDay: DefaultRestDayHours(),
	}
}

func (p ActiveHoursPolicy) Workday() ActiveHoursConfig { return p.workday }
func (p ActiveHoursPolicy) RestDay() ActiveHoursConfig { return p.restDay }

// Resolve picks the window for a calendar date. A date is a rest day when it
// falls on a weekend or appears in the caller-supplied rest-day set; the set
// is opaque data and holidays are never computed here.
func (p ActiveHoursPolicy) Resolve(date time.Time, restDays RestDays) ActiveHoursConfig {
	if isWeekend(date) || restDays.Contains(date) {
		return p.restDay
	}
	return p.workday
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// RestDays is a set of date-only values treated as rest days (holidays plus
// anything else the caller deems a day off).
type RestDays map[time.Time]struct{}

// NewRestDays builds a rest-day set from the given dates.
func NewRestDays(dates ...time.Time) RestDays {
	rd := make(RestDays, len(dates))
	for _, d := range dates {
		rd.Add(d)
	}
	return rd
}

// Add inserts a date, normalized to midnight.
func (rd RestDays) Add(date time.Time) {
	rd[dateOnly(date)] = struct{}{}
}

// Contains reports whether the date's day is in the set.
func (rd RestDays) Contains(date time.Time) bool {
	_, ok := rd[dateOnly(date)]
	return ok
}

// Merge combines two sets into a new one.
func (rd RestDays) Merge(other RestDays) RestDays {
	merged := make(RestDays, len(rd)+len(other))
	for d := range rd {
		merged[d] = struct{}{}
	}
	for d := range other {
		merged[d] = struct{}{}
	}
	return merged
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
