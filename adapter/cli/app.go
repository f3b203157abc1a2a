package cli

import (
	favoritesApp "github.com/felixgeelhaar/serendip/internal/favorites/application"
	historyQueries "github.com/felixgeelhaar/serendip/internal/history/application/queries"
	preferenceCommands "github.com/felixgeelhaar/serendip/internal/preferences/application/commands"
	preferenceQueries "github.com/felixgeelhaar/serendip/internal/preferences/application/queries"
	schedulingQueries "github.com/felixgeelhaar/serendip/internal/scheduling/application/queries"
	suggestionCommands "github.com/felixgeelhaar/serendip/internal/suggestions/application/commands"
	suggestionQueries "github.com/felixgeelhaar/serendip/internal/suggestions/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// CurrentUserID scopes every command.
	CurrentUserID string
	// WeatherLocation goes to the weather provider with each suggestion.
	WeatherLocation string

	// Scheduling
	FindFreeSlotsHandler *schedulingQueries.FindFreeSlotsHandler

	// Suggestions
	GenerateSuggestionHandler *suggestionQueries.GenerateSuggestionHandler
	ListAlternativesHandler   *suggestionQueries.ListAlternativesHandler
	AcceptSuggestionHandler   *suggestionCommands.AcceptSuggestionHandler

	// Preferences
	UpdatePreferencesHandler *preferenceCommands.UpdatePreferencesHandler
	ResetLearningHandler     *preferenceCommands.ResetLearningHandler
	GetPreferencesHandler    *preferenceQueries.GetPreferencesHandler

	// History
	ListHistoryHandler     *historyQueries.ListHistoryHandler
	CategorySummaryHandler *historyQueries.CategorySummaryHandler

	// Favorites
	FavoritesService *favoritesApp.FavoritesService
}

var currentApp *App

// SetApp sets the CLI application instance.
func SetApp(a *App) {
	currentApp = a
}

// GetApp returns the CLI application instance, nil when the container
// failed to initialize.
func GetApp() *App {
	return currentApp
}
