package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	historyQueries "github.com/felixgeelhaar/serendip/internal/history/application/queries"
	preferenceCommands "github.com/felixgeelhaar/serendip/internal/preferences/application/commands"
	preferenceQueries "github.com/felixgeelhaar/serendip/internal/preferences/application/queries"
	"github.com/felixgeelhaar/serendip/internal/suggestions/application/services"
	suggestionCommands "github.com/felixgeelhaar/serendip/internal/suggestions/application/commands"
	suggestionQueries "github.com/felixgeelhaar/serendip/internal/suggestions/application/queries"
	"github.com/felixgeelhaar/serendip/pkg/config"
)

func localConfig() *config.Config {
	return &config.Config{
		AppEnv:           "development",
		UserID:           "local",
		SQLitePath:       ":memory:",
		WeatherCondition: "clear",
		WeatherTempC:     21,
	}
}

func TestNewContainer_LocalMode(t *testing.T) {
	ctx := context.Background()

	container, err := NewContainer(ctx, localConfig(), nil, Options{})
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.SQLiteDB)
	assert.Nil(t, container.PgPool)
	assert.Nil(t, container.RedisClient)
	assert.NotNil(t, container.EventPublisher)
	assert.NotNil(t, container.FindFreeSlotsHandler)
	assert.NotNil(t, container.GenerateSuggestionHandler)
	assert.NotNil(t, container.ListAlternativesHandler)
	assert.NotNil(t, container.AcceptSuggestionHandler)
	assert.NotNil(t, container.UpdatePreferencesHandler)
	assert.NotNil(t, container.ResetLearningHandler)
	assert.NotNil(t, container.GetPreferencesHandler)
	assert.NotNil(t, container.ListHistoryHandler)
	assert.NotNil(t, container.CategorySummaryHandler)
	assert.NotNil(t, container.FavoritesService)
}

// Exercises the whole local pipeline end to end: find a slot, generate a
// suggestion, accept it, and watch the preference model learn.
func TestContainer_SuggestAcceptRoundTrip(t *testing.T) {
	ctx := context.Background()

	container, err := NewContainer(ctx, localConfig(), nil, Options{
		Engine: services.NewSeededSuggestionEngine(42),
	})
	require.NoError(t, err)
	defer container.Close()

	start := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC) // a Monday
	end := start.Add(2 * time.Hour)

	suggestion, err := container.GenerateSuggestionHandler.Handle(ctx, suggestionQueries.GenerateSuggestionQuery{
		UserID:    "local",
		SlotStart: start,
		SlotEnd:   end,
	})
	require.NoError(t, err)
	require.NotNil(t, suggestion)

	err = container.AcceptSuggestionHandler.Handle(ctx, suggestionCommands.AcceptSuggestionCommand{
		UserID:       "local",
		SuggestionID: suggestion.ID,
		Category:     suggestion.Category,
		Title:        suggestion.Title,
		Description:  suggestion.Description,
		SlotStart:    suggestion.SlotStart,
		SlotEnd:      suggestion.SlotEnd,
	})
	require.NoError(t, err)

	prefs, err := container.GetPreferencesHandler.Handle(ctx, preferenceQueries.GetPreferencesQuery{UserID: "local"})
	require.NoError(t, err)
	assert.Equal(t, 1, prefs.SelectionCounts[suggestion.Category])

	history, err := container.ListHistoryHandler.Handle(ctx, historyQueries.ListHistoryQuery{UserID: "local"})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, suggestion.Title, history[0].Title)
}

func TestContainer_ResetLearningClearsCounts(t *testing.T) {
	ctx := context.Background()

	container, err := NewContainer(ctx, localConfig(), nil, Options{})
	require.NoError(t, err)
	defer container.Close()

	err = container.ResetLearningHandler.Handle(ctx, preferenceCommands.ResetLearningCommand{UserID: "local"})
	require.NoError(t, err)

	prefs, err := container.GetPreferencesHandler.Handle(ctx, preferenceQueries.GetPreferencesQuery{UserID: "local"})
	require.NoError(t, err)
	for _, count := range prefs.SelectionCounts {
		assert.Zero(t, count)
	}
}
