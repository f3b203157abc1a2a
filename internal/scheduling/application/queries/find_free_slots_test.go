package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	preferencesDomain "github.com/felixgeelhaar/serendip/internal/preferences/domain"
	"github.com/felixgeelhaar/serendip/internal/scheduling/domain"
)

type mockBusySource struct {
	mock.Mock
}

func (m *mockBusySource) BusyIntervals(ctx context.Context, start, end time.Time) ([]domain.TimeInterval, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeInterval), args.Error(1)
}

func (m *mockBusySource) RestDayDates(ctx context.Context, start, end time.Time) (domain.RestDays, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RestDays), args.Error(1)
}

type mockPreferenceRepo struct {
	mock.Mock
}

func (m *mockPreferenceRepo) FindByUserID(ctx context.Context, userID string) (*preferencesDomain.PreferenceModel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*preferencesDomain.PreferenceModel), args.Error(1)
}

func (m *mockPreferenceRepo) Save(ctx context.Context, model *preferencesDomain.PreferenceModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func interval(t *testing.T, start, end time.Time) domain.TimeInterval {
	t.Helper()
	iv, err := domain.NewTimeInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestFindFreeSlotsHandler_Handle(t *testing.T) {
	ctx := context.Background()
	// Monday.
	rangeStart := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	at := func(hour int) time.Time { return rangeStart.Add(time.Duration(hour) * time.Hour) }

	t.Run("finds gaps around busy events within active hours", func(t *testing.T) {
		source := new(mockBusySource)
		repo := new(mockPreferenceRepo)
		handler := NewFindFreeSlotsHandler(source, repo)

		model, err := preferencesDomain.NewPreferenceModel("user-1")
		require.NoError(t, err)
		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)
		source.On("BusyIntervals", ctx, rangeStart, rangeEnd).Return([]domain.TimeInterval{
			interval(t, at(12), at(13)),
		}, nil)
		source.On("RestDayDates", ctx, rangeStart, rangeEnd).Return(domain.RestDays{}, nil)

		slots, err := handler.Handle(ctx, FindFreeSlotsQuery{
			UserID:     "user-1",
			RangeStart: rangeStart,
			RangeEnd:   rangeEnd,
		})

		require.NoError(t, err)
		// Default workday window is 08:00-20:00.
		require.Len(t, slots, 2)
		assert.Equal(t, at(8), slots[0].Start)
		assert.Equal(t, at(12), slots[0].End)
		assert.Equal(t, 240, slots[0].DurationMinutes)
		assert.Equal(t, at(13), slots[1].Start)
		assert.Equal(t, at(20), slots[1].End)
	})

	t.Run("explicit minimum overrides the user's setting", func(t *testing.T) {
		source := new(mockBusySource)
		repo := new(mockPreferenceRepo)
		handler := NewFindFreeSlotsHandler(source, repo)

		model, err := preferencesDomain.NewPreferenceModel("user-1")
		require.NoError(t, err)
		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)
		// A 45-minute gap between two busy blocks.
		source.On("BusyIntervals", ctx, rangeStart, rangeEnd).Return([]domain.TimeInterval{
			interval(t, at(8), at(12)),
			interval(t, at(12).Add(45*time.Minute), at(20)),
		}, nil)
		source.On("RestDayDates", ctx, rangeStart, rangeEnd).Return(domain.RestDays{}, nil)

		slots, err := handler.Handle(ctx, FindFreeSlotsQuery{
			UserID:         "user-1",
			RangeStart:     rangeStart,
			RangeEnd:       rangeEnd,
			MinimumMinutes: 60,
		})

		require.NoError(t, err)
		assert.Empty(t, slots, "45-minute gap is below the explicit minimum")
	})

	t.Run("rest days switch to the rest-day window", func(t *testing.T) {
		source := new(mockBusySource)
		repo := new(mockPreferenceRepo)
		handler := NewFindFreeSlotsHandler(source, repo)

		model, err := preferencesDomain.NewPreferenceModel("user-1")
		require.NoError(t, err)
		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)
		source.On("BusyIntervals", ctx, rangeStart, rangeEnd).Return([]domain.TimeInterval{}, nil)
		source.On("RestDayDates", ctx, rangeStart, rangeEnd).Return(domain.NewRestDays(rangeStart), nil)

		slots, err := handler.Handle(ctx, FindFreeSlotsQuery{
			UserID:     "user-1",
			RangeStart: rangeStart,
			RangeEnd:   rangeEnd,
		})

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, at(10), slots[0].Start, "holiday Monday uses rest-day hours")
		assert.Equal(t, at(22), slots[0].End)
	})

	t.Run("missing preferences fall back to defaults", func(t *testing.T) {
		source := new(mockBusySource)
		repo := new(mockPreferenceRepo)
		handler := NewFindFreeSlotsHandler(source, repo)

		repo.On("FindByUserID", ctx, "new-user").Return(nil, preferencesDomain.ErrPreferencesNotFound)
		source.On("BusyIntervals", ctx, rangeStart, rangeEnd).Return([]domain.TimeInterval{}, nil)
		source.On("RestDayDates", ctx, rangeStart, rangeEnd).Return(domain.RestDays{}, nil)

		slots, err := handler.Handle(ctx, FindFreeSlotsQuery{
			UserID:     "new-user",
			RangeStart: rangeStart,
			RangeEnd:   rangeEnd,
		})

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, 720, slots[0].DurationMinutes)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		handler := NewFindFreeSlotsHandler(new(mockBusySource), new(mockPreferenceRepo))
		_, err := handler.Handle(ctx, FindFreeSlotsQuery{
			UserID:     "user-1",
			RangeStart: rangeEnd,
			RangeEnd:   rangeStart,
		})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("calendar failure surfaces", func(t *testing.T) {
		source := new(mockBusySource)
		repo := new(mockPreferenceRepo)
		handler := NewFindFreeSlotsHandler(source, repo)

		model, err := preferencesDomain.NewPreferenceModel("user-1")
		require.NoError(t, err)
		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)
		boom := errors.New("caldav unreachable")
		source.On("BusyIntervals", ctx, rangeStart, rangeEnd).Return(nil, boom)

		_, err = handler.Handle(ctx, FindFreeSlotsQuery{
			UserID:     "user-1",
			RangeStart: rangeStart,
			RangeEnd:   rangeEnd,
		})
		assert.ErrorIs(t, err, boom)
	})
}
