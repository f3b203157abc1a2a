package queries

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/serendip/internal/preferences/domain"
	suggestionsDomain "github.com/felixgeelhaar/serendip/internal/suggestions/domain"
)

type mockPreferenceRepo struct {
	mock.Mock
}

func (m *mockPreferenceRepo) FindByUserID(ctx context.Context, userID string) (*domain.PreferenceModel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PreferenceModel), args.Error(1)
}

func (m *mockPreferenceRepo) Save(ctx context.Context, model *domain.PreferenceModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func TestGetPreferencesHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored model as a DTO", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewGetPreferencesHandler(repo)

		model, err := domain.NewPreferenceModel("user-1")
		require.NoError(t, err)
		model.RecordSelection(suggestionsDomain.CategoryWalk)
		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)

		dto, err := handler.Handle(ctx, GetPreferencesQuery{UserID: "user-1"})

		require.NoError(t, err)
		assert.Equal(t, "user-1", dto.UserID)
		assert.Len(t, dto.Categories, 10)
		assert.Equal(t, 1, dto.SelectionCounts["walk"])
		assert.Equal(t, 30, dto.MinimumFreeMinutes)
		assert.Equal(t, 8, dto.WorkdayStartHour)
		assert.Equal(t, 22, dto.RestDayEndHour)

		sum := 0.0
		for _, w := range dto.LearnedWeights {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-6)
	})

	t.Run("missing user gets defaults", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewGetPreferencesHandler(repo)
		repo.On("FindByUserID", ctx, "new-user").Return(nil, domain.ErrPreferencesNotFound)

		dto, err := handler.Handle(ctx, GetPreferencesQuery{UserID: "new-user"})

		require.NoError(t, err)
		assert.Len(t, dto.Categories, 10)
		for _, w := range dto.LearnedWeights {
			assert.InDelta(t, 0.1, w, 1e-9)
		}
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewGetPreferencesHandler(repo)

		boom := errors.New("db down")
		repo.On("FindByUserID", ctx, "user-1").Return(nil, boom)

		_, err := handler.Handle(ctx, GetPreferencesQuery{UserID: "user-1"})
		assert.ErrorIs(t, err, boom)
	})
}
