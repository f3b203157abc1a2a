// Package queries holds the read-side handlers for the scheduling context.
package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	preferencesDomain "github.com/felixgeelhaar/serendip/internal/preferences/domain"
	"github.com/felixgeelhaar/serendip/internal/scheduling/domain"
)

var ErrInvalidRange = errors.New("range end must be after range start")

// BusyIntervalSource supplies the committed events and rest days for a
// time range. The calendar context implements it; tests use fakes.
type BusyIntervalSource interface {
	BusyIntervals(ctx context.Context, start, end time.Time) ([]domain.TimeInterval, error)
	RestDayDates(ctx context.Context, start, end time.Time) (domain.RestDays, error)
}

// FreeSlotDTO is the read model for one discovered slot.
type FreeSlotDTO struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// FindFreeSlotsQuery discovers free slots for a user in a time range.
// MinimumMinutes overrides the user's configured threshold when positive.
type FindFreeSlotsQuery struct {
	UserID         string
	RangeStart     time.Time
	RangeEnd       time.Time
	MinimumMinutes int
}

// FindFreeSlotsHandler handles the FindFreeSlotsQuery.
type FindFreeSlotsHandler struct {
	source          BusyIntervalSource
	preferencesRepo preferencesDomain.Repository
	finder          *domain.SlotFinder
}

// NewFindFreeSlotsHandler creates a new FindFreeSlotsHandler.
func NewFindFreeSlotsHandler(source BusyIntervalSource, preferencesRepo preferencesDomain.Repository) *FindFreeSlotsHandler {
	return &FindFreeSlotsHandler{
		source:          source,
		preferencesRepo: preferencesRepo,
		finder:          domain.NewSlotFinder(),
	}
}

// Handle executes the FindFreeSlotsQuery.
func (h *FindFreeSlotsHandler) Handle(ctx context.Context, query FindFreeSlotsQuery) ([]FreeSlotDTO, error) {
	if !query.RangeEnd.After(query.RangeStart) {
		return nil, ErrInvalidRange
	}

	policy, minimumMinutes, err := h.resolveSettings(ctx, query)
	if err != nil {
		return nil, err
	}

	busy, err := h.source.BusyIntervals(ctx, query.RangeStart, query.RangeEnd)
	if err != nil {
		return nil, fmt.Errorf("loading busy intervals: %w", err)
	}
	restDays, err := h.source.RestDayDates(ctx, query.RangeStart, query.RangeEnd)
	if err != nil {
		return nil, fmt.Errorf("loading rest days: %w", err)
	}

	slots := h.finder.FindFreeSlots(query.RangeStart, query.RangeEnd, busy, minimumMinutes, policy, restDays)

	dtos := make([]FreeSlotDTO, 0, len(slots))
	for _, slot := range slots {
		dtos = append(dtos, FreeSlotDTO{
			Start:           slot.Start(),
			End:             slot.End(),
			DurationMinutes: slot.DurationMinutes(),
		})
	}
	return dtos, nil
}

func (h *FindFreeSlotsHandler) resolveSettings(ctx context.Context, query FindFreeSlotsQuery) (domain.ActiveHoursPolicy, int, error) {
	model, err := h.preferencesRepo.FindByUserID(ctx, query.UserID)
	if errors.Is(err, preferencesDomain.ErrPreferencesNotFound) {
		model, err = preferencesDomain.NewPreferenceModel(query.UserID)
	}
	if err != nil {
		return domain.ActiveHoursPolicy{}, 0, err
	}

	minimumMinutes := model.MinimumFreeMinutes()
	if query.MinimumMinutes > 0 {
		minimumMinutes = query.MinimumMinutes
	}
	return model.ActiveHoursPolicy(), minimumMinutes, nil
}
