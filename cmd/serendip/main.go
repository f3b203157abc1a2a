package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/serendip/adapter/cli"
	"github.com/felixgeelhaar/serendip/internal/app"
	"github.com/felixgeelhaar/serendip/pkg/config"
	"github.com/felixgeelhaar/serendip/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		CurrentUserID:   cfg.UserID,
		WeatherLocation: cfg.WeatherLocation,

		FindFreeSlotsHandler: container.FindFreeSlotsHandler,

		GenerateSuggestionHandler: container.GenerateSuggestionHandler,
		ListAlternativesHandler:   container.ListAlternativesHandler,
		AcceptSuggestionHandler:   container.AcceptSuggestionHandler,

		UpdatePreferencesHandler: container.UpdatePreferencesHandler,
		ResetLearningHandler:     container.ResetLearningHandler,
		GetPreferencesHandler:    container.GetPreferencesHandler,

		ListHistoryHandler:     container.ListHistoryHandler,
		CategorySummaryHandler: container.CategorySummaryHandler,

		FavoritesService: container.FavoritesService,
	})

	cli.Execute()
}
