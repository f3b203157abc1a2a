package commands

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

func intPtr(v int) *int { return &v }

func TestUpdatePreferencesHandler_Handle(t *testing.T) {
	ctx := context.Background()

	existing := func(t *testing.T) *domain.PreferenceModel {
		t.Helper()
		m, err := domain.NewPreferenceModel("user-1")
		require.NoError(t, err)
		return m
	}

	t.Run("updates categories", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewUpdatePreferencesHandler(repo)

		model := existing(t)
		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)
		repo.On("Save", ctx, model).Return(nil)

		err := handler.Handle(ctx, UpdatePreferencesCommand{
			UserID:     "user-1",
			Categories: []string{"cafe", "walk"},
		})

		require.NoError(t, err)
		assert.Equal(t, []suggestionsDomain.Category{suggestionsDomain.CategoryCafe, suggestionsDomain.CategoryWalk}, model.Categories())
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown category without saving", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewUpdatePreferencesHandler(repo)

		repo.On("FindByUserID", ctx, "user-1").Return(existing(t), nil)

		err := handler.Handle(ctx, UpdatePreferencesCommand{
			UserID:     "user-1",
			Categories: []string{"cafe", "skydiving"},
		})

		assert.ErrorIs(t, err, suggestionsDomain.ErrUnknownCategory)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects emptying the category list", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewUpdatePreferencesHandler(repo)
		repo.On("FindByUserID", ctx, "user-1").Return(existing(t), nil)

		err := handler.Handle(ctx, UpdatePreferencesCommand{
			UserID:     "user-1",
			Categories: []string{},
		})

		assert.ErrorIs(t, err, ErrNoCategoriesEnabled)
	})

	t.Run("updates minimum free time", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewUpdatePreferencesHandler(repo)

		model := existing(t)
		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)
		repo.On("Save", ctx, model).Return(nil)

		err := handler.Handle(ctx, UpdatePreferencesCommand{
			UserID:             "user-1",
			MinimumFreeMinutes: intPtr(45),
		})

		require.NoError(t, err)
		assert.Equal(t, 45, model.MinimumFreeMinutes())
	})

	t.Run("merges partial active hours", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewUpdatePreferencesHandler(repo)

		model := existing(t)
		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)
		repo.On("Save", ctx, model).Return(nil)

		err := handler.Handle(ctx, UpdatePreferencesCommand{
			UserID:           "user-1",
			WorkdayStartHour: intPtr(9),
		})

		require.NoError(t, err)
		assert.Equal(t, 9, model.WorkdayHours().StartHour())
		assert.Equal(t, 20, model.WorkdayHours().EndHour(), "unspecified end keeps its value")
		assert.Equal(t, 10, model.RestDayHours().StartHour(), "rest day untouched")
	})

	t.Run("rejects inverted active hours", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewUpdatePreferencesHandler(repo)
		repo.On("FindByUserID", ctx, "user-1").Return(existing(t), nil)

		err := handler.Handle(ctx, UpdatePreferencesCommand{
			UserID:           "user-1",
			WorkdayStartHour: intPtr(21),
		})

		assert.ErrorContains(t, err, "workday hours")
	})

	t.Run("provisions missing user with defaults", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewUpdatePreferencesHandler(repo)

		repo.On("FindByUserID", ctx, "new-user").Return(nil, domain.ErrPreferencesNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*domain.PreferenceModel")).Return(nil)

		err := handler.Handle(ctx, UpdatePreferencesCommand{
			UserID:             "new-user",
			MinimumFreeMinutes: intPtr(60),
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		handler := NewUpdatePreferencesHandler(repo)

		boom := errors.New("db down")
		repo.On("FindByUserID", ctx, "user-1").Return(nil, boom)

		err := handler.Handle(ctx, UpdatePreferencesCommand{UserID: "user-1"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestResetLearningHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("resets counts and publishes the event", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		publisher := new(mockPublisher)
		handler := NewResetLearningHandler(repo, publisher)

		model, err := domain.NewPreferenceModel("user-1")
		require.NoError(t, err)
		model.RecordSelection(suggestionsDomain.CategoryCafe)
		model.ClearDomainEvents()

		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)
		repo.On("Save", ctx, model).Return(nil)
		publisher.On("Publish", ctx, "preferences.learning.reset", mock.Anything).Return(nil)

		require.NoError(t, handler.Handle(ctx, ResetLearningCommand{UserID: "user-1"}))

		assert.Zero(t, model.TotalSelections())
		assert.Empty(t, model.DomainEvents(), "events cleared after publishing")
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("save failure skips publishing", func(t *testing.T) {
		repo := new(mockPreferenceRepo)
		publisher := new(mockPublisher)
		handler := NewResetLearningHandler(repo, publisher)

		model, err := domain.NewPreferenceModel("user-1")
		require.NoError(t, err)

		boom := errors.New("disk full")
		repo.On("FindByUserID", ctx, "user-1").Return(model, nil)
		repo.On("Save", ctx, model).Return(boom)

		err = handler.Handle(ctx, ResetLearningCommand{UserID: "user-1"})
		assert.ErrorIs(t, err, boom)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}
